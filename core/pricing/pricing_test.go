package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"printcost/core/rates"
	"printcost/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func settings(mode types.PricingMode, percent, tax float64) types.PricingSettings {
	return types.PricingSettings{
		Mode:           mode,
		Percent:        percent,
		TaxRatePercent: tax,
		Turnaround:     types.TurnaroundStandard,
		Currency:       types.CurrencyUSD,
	}
}

func TestCalculateMarginMode(t *testing.T) {
	out, err := Calculate(Input{
		Quantity: 1000,
		Subtotal: dec("8000"),
		Settings: settings(types.ModeMargin, 20, 10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// sell = 8000 / 0.8 = 10000; tax = 1000; grand = 11000
	if !out.SellBeforeTax.Equal(dec("10000.00")) {
		t.Errorf("expected sell 10000.00, got %s", out.SellBeforeTax)
	}
	if !out.TaxAmount.Equal(dec("1000.00")) {
		t.Errorf("expected tax 1000.00, got %s", out.TaxAmount)
	}
	if !out.GrandTotal.Equal(dec("11000.00")) {
		t.Errorf("expected grand total 11000.00, got %s", out.GrandTotal)
	}
	if !out.CostPerCopy.Equal(dec("8.00")) {
		t.Errorf("expected cost per copy 8.00, got %s", out.CostPerCopy)
	}
	if !out.SellPerCopy.Equal(dec("11.00")) {
		t.Errorf("expected sell per copy 11.00, got %s", out.SellPerCopy)
	}
}

func TestCalculateMarkupMode(t *testing.T) {
	out, err := Calculate(Input{
		Quantity: 1000,
		Subtotal: dec("8000"),
		Settings: settings(types.ModeMarkup, 25, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// sell = 8000 * 1.25 = 10000
	if !out.SellBeforeTax.Equal(dec("10000.00")) {
		t.Errorf("expected sell 10000.00, got %s", out.SellBeforeTax)
	}
}

func TestMarginMarkupInversionRoundTrip(t *testing.T) {
	// margin% = 100 * (1 - cost/sell) must recover the configured margin
	out, err := Calculate(Input{
		Quantity: 500,
		Subtotal: dec("1234.56"),
		Settings: settings(types.ModeMargin, 35, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, _ := out.ProductionSubtotal.Float64()
	sell, _ := out.SellBeforeTax.Float64()
	recovered := 100 * (1 - cost/sell)
	if recovered < 34.99 || recovered > 35.01 {
		t.Errorf("expected to recover 35%% margin, got %.4f%%", recovered)
	}
}

func TestRushSurchargeAppliedBeforeDiscount(t *testing.T) {
	tiers := []rates.VolumeDiscountTier{{MinQuantity: 0, Percent: 10}}

	s := settings(types.ModeMarkup, 0, 0)
	s.Turnaround = types.TurnaroundRush

	out, err := Calculate(Input{
		Quantity:      1000,
		Subtotal:      dec("1000"),
		Settings:      s,
		DiscountTiers: tiers,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// surcharged = 1150; discount = 10% of 1150 = 115, NOT 10% of 1000
	if !out.RushSurcharge.Equal(dec("150.00")) {
		t.Errorf("expected surcharge 150.00, got %s", out.RushSurcharge)
	}
	if !out.VolumeDiscountAmount.Equal(dec("115.00")) {
		t.Errorf("discount must apply to the surcharged amount: got %s", out.VolumeDiscountAmount)
	}
	if !out.ProductionSubtotal.Equal(dec("1035.00")) {
		t.Errorf("expected production subtotal 1035.00, got %s", out.ProductionSubtotal)
	}
}

func TestMinimumOrderFloorAfterDiscount(t *testing.T) {
	tiers := []rates.VolumeDiscountTier{{MinQuantity: 0, Percent: 50}}

	s := settings(types.ModeMarkup, 0, 0)
	s.MinimumOrderValue = dec("400")

	out, err := Calculate(Input{
		Quantity:      100,
		Subtotal:      dec("600"),
		Settings:      s,
		DiscountTiers: tiers,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// discounted = 300, lifted to the 400 floor
	if !out.MinimumOrderAdjustment.Equal(dec("100.00")) {
		t.Errorf("expected adjustment 100.00, got %s", out.MinimumOrderAdjustment)
	}
	if !out.ProductionSubtotal.Equal(dec("400.00")) {
		t.Errorf("expected floored subtotal 400.00, got %s", out.ProductionSubtotal)
	}
}

func TestDiscountThresholdInclusive(t *testing.T) {
	tiers := rates.Default().VolumeDiscounts

	out, err := Calculate(Input{
		Quantity:      10000,
		Subtotal:      dec("1000"),
		Settings:      settings(types.ModeMarkup, 0, 0),
		DiscountTiers: tiers,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.VolumeDiscountPercent != 5.0 {
		t.Errorf("quantity at threshold must take the higher tier, got %.1f%%", out.VolumeDiscountPercent)
	}
}

func TestCalculateGuards(t *testing.T) {
	if _, err := Calculate(Input{Quantity: 0, Subtotal: dec("100"),
		Settings: settings(types.ModeMargin, 20, 0)}); err == nil {
		t.Error("expected error for zero quantity")
	}

	if _, err := Calculate(Input{Quantity: 10, Subtotal: dec("-5"),
		Settings: settings(types.ModeMargin, 20, 0)}); err == nil {
		t.Error("expected error for negative subtotal")
	}

	// Validation rejects 100% margin upstream; the pipeline still guards
	if _, err := Calculate(Input{Quantity: 10, Subtotal: dec("100"),
		Settings: settings(types.ModeMargin, 100, 0)}); err == nil {
		t.Error("expected error for 100% margin")
	}
}
