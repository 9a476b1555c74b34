package itinerary

import (
	"errors"
	"testing"
)

func TestPricing_AutoTotal(t *testing.T) {
	var p Pricing

	edits := []struct {
		tier  Tier
		field TierField
		value string
	}{
		{Adults, FieldCount, "2"},
		{Adults, FieldCostPerHead, "5000"},
		{Children, FieldCount, "1"},
		{Children, FieldCostPerHead, "3000"},
		{Infants, FieldCount, "0"},
	}
	for _, e := range edits {
		if err := p.SetTierField(e.tier, e.field, e.value); err != nil {
			t.Fatalf("SetTierField(%s, %s, %q) returned error: %v", e.tier, e.field, e.value, err)
		}
	}
	p.SetTaxIncluded(true)

	if p.PackageAmount != 13000 {
		t.Errorf("expected package amount 13000, got %d", p.PackageAmount)
	}
	if p.GSTAmount() != 2340 {
		t.Errorf("expected GST 2340, got %v", p.GSTAmount())
	}
	if p.TotalAmount() != 15340 {
		t.Errorf("expected total 15340, got %v", p.TotalAmount())
	}

	p.SetTaxIncluded(false)
	if p.GSTAmount() != 0 || p.TotalAmount() != 13000 {
		t.Errorf("expected GST 0 and total 13000 without tax, got %v and %v", p.GSTAmount(), p.TotalAmount())
	}
	if p.PackageAmount != 13000 {
		t.Errorf("toggling tax must not change package amount, got %d", p.PackageAmount)
	}
}

func TestPricing_EmptyValueIsZero(t *testing.T) {
	var p Pricing
	p.SetTierField(Adults, FieldCount, "3")
	p.SetTierField(Adults, FieldCostPerHead, "100")

	if err := p.SetTierField(Adults, FieldCount, ""); err != nil {
		t.Fatalf("empty value rejected: %v", err)
	}
	if p.Participants.Adults.Count != 0 || p.PackageAmount != 0 {
		t.Errorf("expected count 0 and amount 0, got %d and %d", p.Participants.Adults.Count, p.PackageAmount)
	}
}

func TestPricing_RejectsInvalidInput(t *testing.T) {
	inputs := []string{"-1", "1.5", "abc", "12a", " 3", "1e3", "99999999999999999999999", "1000000000000"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			var p Pricing
			p.SetTierField(Children, FieldCount, "4")
			p.SetTierField(Children, FieldCostPerHead, "250")
			before := p

			if err := p.SetTierField(Children, FieldCount, in); !errors.Is(err, ErrInvalidNumber) {
				t.Errorf("expected ErrInvalidNumber, got %v", err)
			}
			if err := p.SetTierField(Children, FieldCostPerHead, in); !errors.Is(err, ErrInvalidNumber) {
				t.Errorf("expected ErrInvalidNumber, got %v", err)
			}
			p.SetManualOverride(true)
			p.SetManualAmount("700")
			if err := p.SetManualAmount(in); !errors.Is(err, ErrInvalidNumber) {
				t.Errorf("expected ErrInvalidNumber for manual amount, got %v", err)
			}
			if p.PackageAmount != 700 || p.ManualAmount != "700" {
				t.Errorf("manual amount changed by invalid input: %d %q", p.PackageAmount, p.ManualAmount)
			}
			if p.Participants != before.Participants {
				t.Errorf("participants changed by invalid input: %+v", p.Participants)
			}
		})
	}
}

func TestPricing_RejectsOverflowingTotals(t *testing.T) {
	var p Pricing
	if err := p.SetTierField(Adults, FieldCount, "9999999999"); err != nil {
		t.Fatalf("SetTierField returned error: %v", err)
	}
	before := p

	if err := p.SetTierField(Adults, FieldCostPerHead, "9999999999"); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber for an overflowing subtotal, got %v", err)
	}
	if p != before {
		t.Errorf("rejected input changed pricing: %+v", p)
	}

	t.Run("SumAcrossTiers", func(t *testing.T) {
		var p Pricing
		p.SetTierField(Adults, FieldCount, "1")
		p.SetTierField(Adults, FieldCostPerHead, "999999999999")
		p.SetTierField(Children, FieldCount, "1")
		if err := p.SetTierField(Children, FieldCostPerHead, "1"); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("expected ErrInvalidNumber for an overflowing sum, got %v", err)
		}
		if p.PackageAmount != MaxAmount {
			t.Errorf("expected package amount %d, got %d", MaxAmount, p.PackageAmount)
		}
	})

	t.Run("ManualModeStillChecksTiers", func(t *testing.T) {
		var p Pricing
		p.SetManualOverride(true)
		p.SetTierField(Infants, FieldCount, "9999999999")
		if err := p.SetTierField(Infants, FieldCostPerHead, "9999999999"); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("expected ErrInvalidNumber, got %v", err)
		}
		p.SetManualOverride(false)
		if p.PackageAmount != 0 {
			t.Errorf("expected 0 after leaving manual mode, got %d", p.PackageAmount)
		}
	})

	t.Run("LargestAmountGST", func(t *testing.T) {
		var p Pricing
		p.SetManualOverride(true)
		if err := p.SetManualAmount("999999999999"); err != nil {
			t.Fatalf("SetManualAmount returned error: %v", err)
		}
		p.SetTaxIncluded(true)
		if got := p.GSTAmount(); got != 179999999999.82 {
			t.Errorf("unexpected GST %v", got)
		}
	})
}

func TestPricing_UnknownTierAndField(t *testing.T) {
	var p Pricing
	if err := p.SetTierField("pets", FieldCount, "1"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("expected ErrUnknownTier, got %v", err)
	}
	if err := p.SetTierField(Adults, "age", "1"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestPricing_ManualOverride(t *testing.T) {
	var p Pricing
	p.SetTierField(Adults, FieldCount, "2")
	p.SetTierField(Adults, FieldCostPerHead, "1000")

	t.Run("ManualAmountIgnoredWhenOff", func(t *testing.T) {
		if err := p.SetManualAmount("50"); !errors.Is(err, ErrOverrideDisabled) {
			t.Fatalf("expected ErrOverrideDisabled, got %v", err)
		}
		if p.PackageAmount != 2000 {
			t.Errorf("expected 2000, got %d", p.PackageAmount)
		}
	})

	t.Run("OverrideFreezesAmount", func(t *testing.T) {
		p.SetManualOverride(true)
		if p.PackageAmount != 2000 {
			t.Errorf("enabling override should keep current amount, got %d", p.PackageAmount)
		}
		p.SetManualAmount("7500")
		p.SetTierField(Adults, FieldCount, "3")
		if p.PackageAmount != 7500 {
			t.Errorf("tier edits must not change manual amount, got %d", p.PackageAmount)
		}
		p.SetManualAmount("")
		if p.PackageAmount != 0 {
			t.Errorf("empty manual amount should be 0, got %d", p.PackageAmount)
		}
		p.SetManualAmount("7500")
	})

	t.Run("DisablingRecomputes", func(t *testing.T) {
		p.SetManualOverride(false)
		if p.PackageAmount != 3000 {
			t.Errorf("expected auto total 3000, got %d", p.PackageAmount)
		}
		if p.ManualAmount != "" {
			t.Errorf("expected manual text cleared, got %q", p.ManualAmount)
		}
	})
}

func TestPricing_TotalInvariant(t *testing.T) {
	var p Pricing
	ops := []func(){
		func() { p.SetTierField(Adults, FieldCount, "7") },
		func() { p.SetTierField(Adults, FieldCostPerHead, "1234") },
		func() { p.SetTaxIncluded(true) },
		func() { p.SetTierField(Infants, FieldCount, "1") },
		func() { p.SetTierField(Infants, FieldCostPerHead, "333") },
		func() { p.SetManualOverride(true) },
		func() { p.SetManualAmount("10001") },
		func() { p.SetTaxIncluded(false) },
		func() { p.SetManualOverride(false) },
		func() { p.SetTaxIncluded(true) },
	}
	for i, op := range ops {
		op()
		gst := 0.0
		if p.IncludeGST {
			gst = float64(p.PackageAmount) * 0.18
		}
		want := float64(p.PackageAmount) + gst
		if diff := p.TotalAmount() - want; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("step %d: total %v, want %v", i, p.TotalAmount(), want)
		}
		if !p.IsManualTotal && p.PackageAmount != p.Participants.AutoTotal() {
			t.Errorf("step %d: auto amount %d, want %d", i, p.PackageAmount, p.Participants.AutoTotal())
		}
	}
}
