package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed plans.yaml
var defaultPlanCatalog []byte

// PlanSpec is one entry of the plan catalog file.
type PlanSpec struct {
	Name         string   `yaml:"name"`
	MonthlyPrice string   `yaml:"monthly_price"`
	StaffLimit   int      `yaml:"staff_limit"`
	BookingLimit *int     `yaml:"booking_limit,omitempty"` // nil = unlimited
	Features     []string `yaml:"features"`
}

type PlanCatalog struct {
	Plans []PlanSpec `yaml:"plans"`
}

// LoadPlanCatalog reads the catalog at path, or the embedded default when path is empty.
func LoadPlanCatalog(path string) (PlanCatalog, error) {
	data := defaultPlanCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return PlanCatalog{}, fmt.Errorf("read plan catalog: %w", err)
		}
		data = b
	}

	var catalog PlanCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return PlanCatalog{}, fmt.Errorf("parse plan catalog: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return PlanCatalog{}, fmt.Errorf("validate plan catalog: %w", err)
	}
	return catalog, nil
}

func (c PlanCatalog) Validate() error {
	if len(c.Plans) == 0 {
		return fmt.Errorf("no plans defined")
	}
	seen := make(map[string]struct{}, len(c.Plans))
	for i, p := range c.Plans {
		if p.Name == "" {
			return fmt.Errorf("plan %d: name is required", i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("plan %q: duplicate name", p.Name)
		}
		seen[p.Name] = struct{}{}

		price, err := decimal.NewFromString(p.MonthlyPrice)
		if err != nil {
			return fmt.Errorf("plan %q: invalid monthly_price: %w", p.Name, err)
		}
		if price.IsNegative() {
			return fmt.Errorf("plan %q: monthly_price must not be negative", p.Name)
		}
		if p.StaffLimit <= 0 {
			return fmt.Errorf("plan %q: staff_limit must be positive", p.Name)
		}
		if p.BookingLimit != nil && *p.BookingLimit <= 0 {
			return fmt.Errorf("plan %q: booking_limit must be positive when set", p.Name)
		}
	}
	return nil
}

// Price returns the parsed monthly price; Validate guarantees it parses.
func (p PlanSpec) Price() decimal.Decimal {
	return decimal.RequireFromString(p.MonthlyPrice)
}
