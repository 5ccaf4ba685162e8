package password

import (
	"barbershop-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCost = bcrypt.DefaultCost
	MinLength   = 6
	// bcrypt ignores everything past 72 bytes
	MaxLength = 72
)

var (
	ErrTooShort = errs.Newf("password must have at least %d characters", MinLength)
	ErrTooLong  = errs.Newf("password must have at most %d bytes", MaxLength)
	ErrMismatch = errs.New("password does not match")
)

// Validate reports rule violations only. Callers map these to a 400.
func Validate(plain string) error {
	switch {
	case len([]rune(plain)) < MinLength:
		return ErrTooShort
	case len(plain) > MaxLength:
		return ErrTooLong
	}
	return nil
}

func HashPassword(plain string) (string, error) {
	return HashPasswordWithCost(plain, DefaultCost)
}

// HashPasswordWithCost lets tests use bcrypt.MinCost.
func HashPasswordWithCost(plain string, cost int) (string, error) {
	if err := Validate(plain); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

func ComparePassword(hashed, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errs.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	if err != nil {
		return errs.Wrap(err, "compare password")
	}
	return nil
}
