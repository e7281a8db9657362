package pricing

import (
	"fmt"

	"kiosk_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// TierRates holds one price per tier.
type TierRates map[entities.Tier]decimal.Decimal

// RateTable is the pricebook used by the engine. Every tiered rate must be
// non-decreasing from GOOD to BEST.
type RateTable struct {
	CabinetBasePerLF      decimal.Decimal
	CabinetTierDelta      TierRates
	CabinetInstallPerLF   decimal.Decimal
	Countertop            map[entities.CountertopMaterial]TierRates
	CountertopFabPerLF    decimal.Decimal
	CountertopDepthInches decimal.Decimal
	Flooring              map[entities.FlooringMaterial]TierRates
	PlumbingMove          TierRates
	DemoAllowance         decimal.Decimal
	DepositCredit         decimal.Decimal
}

func tierRates(good, better, best float64) TierRates {
	return TierRates{
		entities.TierGood:   decimal.NewFromFloat(good),
		entities.TierBetter: decimal.NewFromFloat(better),
		entities.TierBest:   decimal.NewFromFloat(best),
	}
}

// DefaultRates is the store pricebook.
func DefaultRates() RateTable {
	return RateTable{
		CabinetBasePerLF:    decimal.NewFromInt(250),
		CabinetTierDelta:    tierRates(0, 100, 250),
		CabinetInstallPerLF: decimal.NewFromInt(75),
		Countertop: map[entities.CountertopMaterial]TierRates{
			entities.CountertopQuartz:  tierRates(65, 85, 110),
			entities.CountertopGranite: tierRates(55, 75, 100),
		},
		CountertopFabPerLF:    decimal.NewFromInt(20),
		CountertopDepthInches: decimal.NewFromInt(25),
		Flooring: map[entities.FlooringMaterial]TierRates{
			entities.FlooringLVP:  tierRates(4.5, 6.5, 9),
			entities.FlooringTile: tierRates(8, 11, 15),
		},
		PlumbingMove:  tierRates(450, 650, 900),
		DemoAllowance: decimal.NewFromInt(1500),
		DepositCredit: decimal.NewFromInt(500),
	}
}

// Validate checks that every tiered rate is present, non-negative and
// non-decreasing in tier order.
func (r RateTable) Validate() error {
	if r.CountertopDepthInches.Sign() <= 0 {
		return fmt.Errorf("countertop depth must be positive")
	}
	if err := checkTiered("cabinet delta", r.CabinetTierDelta); err != nil {
		return err
	}
	if r.CabinetTierDelta[entities.TierGood].Sign() != 0 {
		return fmt.Errorf("cabinet delta for %s must be zero", entities.TierGood)
	}
	for m, rates := range r.Countertop {
		if err := checkTiered("countertop "+string(m), rates); err != nil {
			return err
		}
	}
	for m, rates := range r.Flooring {
		if err := checkTiered("flooring "+string(m), rates); err != nil {
			return err
		}
	}
	return checkTiered("plumbing move", r.PlumbingMove)
}

func checkTiered(name string, rates TierRates) error {
	prev := decimal.Zero
	for _, t := range entities.Tiers {
		v, ok := rates[t]
		if !ok {
			return fmt.Errorf("%s: missing rate for %s", name, t)
		}
		if v.Sign() < 0 {
			return fmt.Errorf("%s: negative rate for %s", name, t)
		}
		if v.LessThan(prev) {
			return fmt.Errorf("%s: rate for %s is lower than the previous tier", name, t)
		}
		prev = v
	}
	return nil
}
