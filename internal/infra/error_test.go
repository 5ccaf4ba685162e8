//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: errs.Wrap(pgx.ErrNoRows, "scan"), want: infra.KindNotFound},
		{name: "slot index violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "bookings_confirmed_slot_uniq"}, want: infra.KindConflict},
		{name: "other unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "tenants_email_key"}, want: infra.KindDuplicateKey},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, want: infra.KindConflict},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infra.Classify(tt.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505", ConstraintName: "bookings_confirmed_slot_uniq"}

	err := infra.WrapRepoErr("failed to create booking", cause)
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.False(t, infra.IsKind(err, infra.KindDuplicateKey))

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr), "driver error stays reachable")

	overridden := infra.WrapRepoErr("staff not found", pgx.ErrNoRows, infra.KindNotFound)
	assert.True(t, infra.IsKind(overridden, infra.KindNotFound))
	assert.Contains(t, overridden.Error(), "NOT_FOUND: staff not found")

	assert.True(t, infra.IsKind(infra.NewRepoErr(infra.KindConflict, "memory"), infra.KindConflict))
}
