package contact

import (
	"fmt"
	"net/mail"
	"strings"

	"barbershop-booking/internal/pkg/errs"
)

const (
	MinPhoneDigits = 10
	MaxPhoneDigits = 13
	MaxEmailLength = 120
)

var (
	ErrInvalidPhone = errs.Validation("phone must have at least 10 digits")
	ErrInvalidEmail = errs.Validation("invalid email")
)

// Phone holds digits only, so "(11) 98765-4321" and "11987654321" compare equal.
type Phone struct {
	digits string
}

func NewPhone(raw string) (Phone, error) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < MinPhoneDigits || len(digits) > MaxPhoneDigits {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{digits: digits}, nil
}

func (p Phone) Digits() string { return p.digits }
func (p Phone) IsZero() bool   { return p.digits == "" }

// Formatted renders Brazilian landline/mobile numbers; other lengths are returned as digits.
func (p Phone) Formatted() string {
	d := p.digits
	switch len(d) {
	case 11:
		return fmt.Sprintf("(%s) %s-%s", d[:2], d[2:7], d[7:])
	case 10:
		return fmt.Sprintf("(%s) %s-%s", d[:2], d[2:6], d[6:])
	default:
		return d
	}
}

type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" || len(v) > MaxEmailLength || !strings.Contains(v, "@") {
		return Email{}, ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) String() string { return e.value }
func (e Email) IsZero() bool   { return e.value == "" }
