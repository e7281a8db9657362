package entities

import (
	"testing"
	"time"
)

func TestTierRank(t *testing.T) {
	if TierGood.Rank() != 0 || TierBetter.Rank() != 1 || TierBest.Rank() != 2 {
		t.Fatalf("unexpected tier order")
	}
	if Tier("PLATINUM").Valid() {
		t.Fatalf("unknown tier must be invalid")
	}
}

func TestFinalizationPatch(t *testing.T) {
	paidAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	patch := Finalization{ReferenceCode: "KQ-ABC-123456", PaymentID: "pay-1", PaidAt: paidAt}.Patch()

	d := QuoteDraft{ID: "d-1", Status: QuoteStatusDraft, AppointmentSlot: "Monday 9:00 AM - 11:00 AM"}
	patch.Apply(&d)

	if !d.IsBooked() || !d.DepositPaid || d.ReferenceCode != "KQ-ABC-123456" || d.PaymentID != "pay-1" || !d.PaidAt.Equal(paidAt) {
		t.Fatalf("unexpected draft after finalization: %+v", d)
	}
	if d.AppointmentSlot != "Monday 9:00 AM - 11:00 AM" {
		t.Fatalf("untouched fields must be preserved")
	}
	if patch.IsEmpty() || !(QuoteDraftPatch{}).IsEmpty() {
		t.Fatalf("unexpected IsEmpty result")
	}
}

func TestPresetByID(t *testing.T) {
	p, ok := PresetByID(PresetMedium)
	if !ok || p.Dimensions.AreaSqFt() != 144 || p.LinearFeet.CabinetLF != 25 || p.LinearFeet.CountertopLF != 16 {
		t.Fatalf("unexpected medium preset: %+v", p)
	}
	if _, ok := PresetByID("HUGE"); ok {
		t.Fatalf("unknown preset must not resolve")
	}

	list := Presets()
	list[0].Name = "mutated"
	if again := Presets(); again[0].Name == "mutated" {
		t.Fatalf("Presets must return a copy")
	}
}
