package wizard

import "kiosk_quote/internal/domain/entities"

// Event is an input to Machine.Apply.
type Event interface {
	eventName() string
}

// Continue advances to the next step when the current step's gate passes.
type Continue struct{}

// Back returns to the previous step without validating or saving.
type Back struct{}

// Reset discards the booked draft on confirm and returns to welcome.
type Reset struct{}

// AttachUser links the draft to the signed-in operator, if any.
type AttachUser struct{ UserID string }

// Saved records the id the store assigned to the draft.
type Saved struct{ ID string }

type SetCustomer struct{ Customer entities.Customer }

// SelectSizeMode switches between preset and manual sizing. PresetID is optional
// in PRESET mode and defaults to the draft's current preset.
type SelectSizeMode struct {
	Mode     entities.SizeMode
	PresetID string
}

type SetManualSize struct {
	Dimensions entities.Dimensions
	LinearFeet entities.LinearFeet
}

// SetManualDimensions edits the room only; the linear feet are kept.
type SetManualDimensions struct{ Dimensions entities.Dimensions }

// SetManualLinearFeet edits the runs only; the room is kept.
type SetManualLinearFeet struct{ LinearFeet entities.LinearFeet }

type SetTier struct{ Tier entities.Tier }

type SetCountertopMaterial struct{ Material entities.CountertopMaterial }

type SetFlooringMaterial struct{ Material entities.FlooringMaterial }

type SetAddOns struct{ AddOns entities.AddOns }

type SelectAppointmentSlot struct{ Slot string }

// ReserveReference remembers the reference code minted for a finalization attempt.
// An already reserved code is kept, so retries never mint a second one.
type ReserveReference struct{ Code string }

// RecordDeposit remembers the provider payment id of a successful deposit charge.
type RecordDeposit struct{ PaymentID string }

// Finalized books the draft and moves payment -> confirm.
type Finalized struct{ Finalization entities.Finalization }

func (Continue) eventName() string              { return "continue" }
func (Back) eventName() string                  { return "back" }
func (Reset) eventName() string                 { return "reset" }
func (AttachUser) eventName() string            { return "attach_user" }
func (Saved) eventName() string                 { return "saved" }
func (SetCustomer) eventName() string           { return "set_customer" }
func (SelectSizeMode) eventName() string        { return "select_size_mode" }
func (SetManualSize) eventName() string         { return "set_manual_size" }
func (SetManualDimensions) eventName() string   { return "set_manual_dimensions" }
func (SetManualLinearFeet) eventName() string   { return "set_manual_linear_feet" }
func (SetTier) eventName() string               { return "set_tier" }
func (SetCountertopMaterial) eventName() string { return "set_countertop_material" }
func (SetFlooringMaterial) eventName() string   { return "set_flooring_material" }
func (SetAddOns) eventName() string             { return "set_add_ons" }
func (SelectAppointmentSlot) eventName() string { return "select_appointment_slot" }
func (ReserveReference) eventName() string      { return "reserve_reference" }
func (RecordDeposit) eventName() string         { return "record_deposit" }
func (Finalized) eventName() string             { return "finalized" }

// EventName returns the stable name of ev, used for logs and metrics.
func EventName(ev Event) string {
	if ev == nil {
		return ""
	}
	return ev.eventName()
}
