package commands

import (
	"context"
	"log/slog"
	"time"

	"barbershop-booking/internal/domain/catalog"
	"barbershop-booking/internal/domain/contact"
	"barbershop-booking/internal/domain/schedule"
	"barbershop-booking/internal/domain/staff"
	"barbershop-booking/internal/domain/tenant"
	"barbershop-booking/internal/infra"
	"barbershop-booking/internal/pkg/clock"
	"barbershop-booking/internal/pkg/config"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/pkg/password"
	"barbershop-booking/internal/pkg/patch"
	"barbershop-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	defaultStaffName      = "Meu Barbeiro"
	defaultStaffSpecialty = "Cortes e Barbas"
	maxSlugAttempts       = 100
)

var ErrSlugExhausted = errs.New("no free domain slug for tenant name")

type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	PlanID   *uuid.UUID
}

type RegisterResult struct {
	TenantID  uuid.UUID
	Slug      string
	ExpiresAt time.Time
	Token     string
}

type PolicyInput struct {
	OpensAt         string
	ClosesAt        string
	IntervalMinutes int
	Preferences     *schedule.Preferences
}

type TenantCommands interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	Activate(ctx context.Context, tenantID uuid.UUID, extendDays int) error
	Deactivate(ctx context.Context, tenantID uuid.UUID) error
	ChangePlan(ctx context.Context, tenantID, planID uuid.UUID) error
	UpdatePolicy(ctx context.Context, tenantID uuid.UUID, in PolicyInput) error
}

type tenantCommandsImpl struct {
	uow        shared.UnitOfWork
	tokens     TokenIssuer
	clock      clock.Clock
	trialDays  int
	hashPasswd func(string) (string, error)
}

func NewTenantCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock, cfg config.Config) TenantCommands {
	return &tenantCommandsImpl{
		uow:        uow,
		tokens:     tokens,
		clock:      clk,
		trialDays:  cfg.Booking.TrialDays,
		hashPasswd: password.HashPassword,
	}
}

func (uc *tenantCommandsImpl) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	email, err := contact.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if err := password.Validate(in.Password); err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}
	hash, err := uc.hashPasswd(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()

	var created *tenant.Tenant
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Reads().EmailTaken(ctx, email.String())
		if err != nil {
			return err
		}
		if taken {
			return ErrTenantAlreadyExists
		}

		plan, err := uc.resolvePlan(ctx, tx, in.PlanID)
		if err != nil {
			return err
		}

		slug, err := uniqueSlug(ctx, tx.Reads(), tenant.BaseSlug(in.Name))
		if err != nil {
			return err
		}

		t, err := tenant.NewTenant(tenant.NewTenantParams{
			Name:         in.Name,
			Email:        in.Email,
			Phone:        in.Phone,
			Slug:         slug,
			PlanID:       plan.ID,
			PasswordHash: hash,
			TrialPeriod:  time.Duration(uc.trialDays) * 24 * time.Hour,
		}, now)
		if err != nil {
			return err
		}
		if err := tx.Tenants().Create(ctx, t); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrTenantAlreadyExists)
			}
			return err
		}

		if err := seedDefaults(ctx, tx, t.ID(), now); err != nil {
			return err
		}
		created = t
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	token, err := uc.tokens.IssueOwnerToken(created.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("tenant registered",
		"tenant_id", created.ID().String(),
		"slug", created.Slug().String(),
		"plan_id", created.PlanID().String())

	return &RegisterResult{
		TenantID:  created.ID(),
		Slug:      created.Slug().String(),
		ExpiresAt: *created.ExpiresAt(),
		Token:     token,
	}, nil
}

func (uc *tenantCommandsImpl) resolvePlan(ctx context.Context, tx shared.Tx, planID *uuid.UUID) (*shared.PlanSnapshot, error) {
	if planID == nil {
		return tx.Reads().CheapestPlan(ctx)
	}
	p, err := tx.Reads().PlanByID(ctx, *planID)
	if err != nil {
		if errs.Is(err, ErrPlanNotFound) {
			return nil, errs.Mark(err, ErrValidation)
		}
		return nil, err
	}
	return p, nil
}

func uniqueSlug(ctx context.Context, reads shared.CommandReads, base tenant.Slug) (tenant.Slug, error) {
	for n := 0; n < maxSlugAttempts; n++ {
		candidate := base.Candidate(n)
		taken, err := reads.SlugTaken(ctx, candidate.String())
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errs.Wrapf(ErrSlugExhausted, "base %q", base)
}

// seedDefaults gives a new tenant something bookable right away.
func seedDefaults(ctx context.Context, tx shared.Tx, tenantID uuid.UUID, now time.Time) error {
	for _, svc := range catalog.Defaults(tenantID) {
		if err := tx.Services().Create(ctx, svc); err != nil {
			return err
		}
	}
	member, err := staff.NewMember(tenantID, defaultStaffName, defaultStaffSpecialty, nil, now)
	if err != nil {
		return err
	}
	if err := tx.Staff().Create(ctx, member); err != nil {
		return err
	}
	return tx.Policies().Upsert(ctx, tenantID, schedule.DefaultPolicy())
}

func (uc *tenantCommandsImpl) Activate(ctx context.Context, tenantID uuid.UUID, extendDays int) error {
	now := uc.clock.Now()
	return uc.mutateTenant(ctx, tenantID, func(t *tenant.Tenant) error {
		t.Activate(now, extendDays)
		return nil
	})
}

func (uc *tenantCommandsImpl) Deactivate(ctx context.Context, tenantID uuid.UUID) error {
	return uc.mutateTenant(ctx, tenantID, func(t *tenant.Tenant) error {
		t.Deactivate()
		return nil
	})
}

func (uc *tenantCommandsImpl) ChangePlan(ctx context.Context, tenantID, planID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().PlanByID(ctx, planID)
		if err != nil {
			return err
		}
		return uc.updateTenant(ctx, tx, tenantID, func(t *tenant.Tenant) error {
			return t.ChangePlan(p.ID)
		})
	})
	return classify(err)
}

func (uc *tenantCommandsImpl) UpdatePolicy(ctx context.Context, tenantID uuid.UUID, in PolicyInput) error {
	opens, err := schedule.ParseTimeOfDay(in.OpensAt)
	if err != nil {
		return err
	}
	closes, err := schedule.ParseTimeOfDay(in.ClosesAt)
	if err != nil {
		return err
	}
	prefs := patch.Coalesce(in.Preferences, schedule.DefaultPreferences())
	policy, err := schedule.NewPolicy(opens, closes, in.IntervalMinutes, prefs)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().TenantByID(ctx, tenantID); err != nil {
			return err
		}
		return tx.Policies().Upsert(ctx, tenantID, policy)
	})
	return classify(err)
}

func (uc *tenantCommandsImpl) mutateTenant(ctx context.Context, tenantID uuid.UUID, mutate func(*tenant.Tenant) error) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return uc.updateTenant(ctx, tx, tenantID, mutate)
	})
	return classify(err)
}

func (uc *tenantCommandsImpl) updateTenant(ctx context.Context, tx shared.Tx, tenantID uuid.UUID, mutate func(*tenant.Tenant) error) error {
	snap, err := tx.Reads().TenantByID(ctx, tenantID)
	if err != nil {
		return err
	}
	t := snap.ToDomain()
	if err := mutate(t); err != nil {
		return err
	}
	if err := tx.Tenants().Update(ctx, t); err != nil {
		return shared.NotFoundOr(err, ErrTenantNotFound)
	}
	return nil
}
