package wizard

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/domain/pricing"

	"github.com/go-playground/validator/v10"
)

// State is the whole wizard: the current step plus the draft being built.
//
// PendingReference and PendingPaymentID belong to the session rather than the
// draft: they survive a failed finalization so a retry re-uses them.
type State struct {
	Step             Step
	Draft            entities.QuoteDraft
	PendingReference string
	PendingPaymentID string
}

// Machine is the pure transition function of the wizard. It performs no I/O;
// saving and finalizing are left to the caller.
type Machine struct {
	pricer   pricing.Calculator
	slots    []string
	now      func() time.Time
	validate *validator.Validate
}

type Option func(*Machine)

func WithClock(now func() time.Time) Option {
	return func(m *Machine) { m.now = now }
}

func NewMachine(pricer pricing.Calculator, slots []string, opts ...Option) *Machine {
	if len(slots) == 0 {
		slots = entities.DefaultAppointmentSlots
	}
	m := &Machine{
		pricer:   pricer,
		slots:    append([]string(nil), slots...),
		now:      func() time.Time { return time.Now().UTC() },
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Slots returns the offered appointment slot labels.
func (m *Machine) Slots() []string {
	return append([]string(nil), m.slots...)
}

// NewState returns a fresh, unsaved session on the welcome step.
func (m *Machine) NewState() State {
	preset, _ := entities.PresetByID(entities.DefaultPresetID)
	d := entities.QuoteDraft{
		SizeMode:           entities.SizeModePreset,
		PresetID:           preset.ID,
		Dimensions:         preset.Dimensions,
		LinearFeet:         preset.LinearFeet,
		Tier:               entities.TierBetter,
		CountertopMaterial: entities.CountertopQuartz,
		FlooringMaterial:   entities.FlooringLVP,
		Status:             entities.QuoteStatusDraft,
	}
	if res, err := m.pricer.Calculate(pricing.InputFromDraft(d)); err == nil {
		d.Estimate = res.Estimate
	}
	return State{Step: StepWelcome, Draft: d}
}

// Apply returns the state that results from ev, or an error and the unchanged
// input state. s is never modified.
func (m *Machine) Apply(s State, ev Event) (State, error) {
	switch e := ev.(type) {
	case Continue:
		return m.advance(s)
	case Back:
		prev, ok := s.Step.Prev()
		if !ok {
			return s, transitionError(s.Step, "back")
		}
		next := s
		next.Step = prev
		return next, nil
	case Reset:
		if s.Step != StepConfirm {
			return s, transitionError(s.Step, "reset")
		}
		return m.NewState(), nil
	case AttachUser:
		if s.Draft.ID != "" || s.Step.Index() > StepCustomer.Index() {
			return s, transitionError(s.Step, "attach user")
		}
		next := s
		next.Draft.UserID = strings.TrimSpace(e.UserID)
		return next, nil
	case Saved:
		if e.ID == "" {
			return s, transitionError(s.Step, "saved without id")
		}
		if s.Draft.ID != "" && s.Draft.ID != e.ID {
			return s, ErrDraftIDMismatch
		}
		next := s
		next.Draft.ID = e.ID
		return next, nil
	case SetCustomer:
		return m.setCustomer(s, e)
	case SelectSizeMode:
		return m.selectSizeMode(s, e)
	case SetManualSize:
		return m.setManualSize(s, e)
	case SetManualDimensions:
		return m.setManualSize(s, SetManualSize{Dimensions: e.Dimensions, LinearFeet: s.Draft.LinearFeet})
	case SetManualLinearFeet:
		return m.setManualSize(s, SetManualSize{Dimensions: s.Draft.Dimensions, LinearFeet: e.LinearFeet})
	case SetTier:
		if err := requireStep(s, "tier", StepMaterials, StepEstimate); err != nil {
			return s, err
		}
		if !e.Tier.Valid() {
			return s, invalid(s.Step, "Choose Good, Better or Best.", "tier")
		}
		return m.reprice(s, func(d *entities.QuoteDraft) { d.Tier = e.Tier })
	case SetCountertopMaterial:
		if err := requireStep(s, "countertop_material", StepMaterials, StepEstimate); err != nil {
			return s, err
		}
		if !e.Material.Valid() {
			return s, invalid(s.Step, "Choose a countertop material.", "countertop_material")
		}
		return m.reprice(s, func(d *entities.QuoteDraft) { d.CountertopMaterial = e.Material })
	case SetFlooringMaterial:
		if err := requireStep(s, "flooring_material", StepMaterials, StepEstimate); err != nil {
			return s, err
		}
		if !e.Material.Valid() {
			return s, invalid(s.Step, "Choose a flooring material.", "flooring_material")
		}
		return m.reprice(s, func(d *entities.QuoteDraft) { d.FlooringMaterial = e.Material })
	case SetAddOns:
		if err := requireStep(s, "add_ons", StepMaterials, StepEstimate); err != nil {
			return s, err
		}
		if e.AddOns.PlumbingMoveCount < 0 {
			return s, invalid(s.Step, "Plumbing moves must be between 0 and 50.", "add_ons.plumbing_move_count")
		}
		return m.reprice(s, func(d *entities.QuoteDraft) { d.AddOns = e.AddOns })
	case SelectAppointmentSlot:
		if err := requireStep(s, "appointment_slot", StepAppointment); err != nil {
			return s, err
		}
		slot := strings.TrimSpace(e.Slot)
		if !m.offered(slot) {
			return s, invalid(s.Step, "Choose one of the offered appointment times.", "appointment_slot")
		}
		next := s
		next.Draft.AppointmentSlot = slot
		return next, nil
	case ReserveReference:
		if s.Step != StepPayment || s.Draft.IsBooked() {
			return s, transitionError(s.Step, "reserve reference")
		}
		next := s
		if next.PendingReference == "" {
			next.PendingReference = e.Code
		}
		return next, nil
	case RecordDeposit:
		if s.Step != StepPayment || s.PendingReference == "" {
			return s, transitionError(s.Step, "record deposit")
		}
		next := s
		next.PendingPaymentID = e.PaymentID
		return next, nil
	case Finalized:
		return m.finalized(s, e)
	}
	return s, transitionError(s.Step, "unknown event")
}

func (m *Machine) advance(s State) (State, error) {
	switch s.Step {
	case StepPayment:
		return s, ErrFinalizationRequired
	case StepCustomer:
		if err := m.checkCustomer(s.Draft.Customer); err != nil {
			return s, err
		}
	case StepAppointment:
		if !m.offered(s.Draft.AppointmentSlot) {
			return s, invalid(s.Step, "Choose an appointment time to continue.", "appointment_slot")
		}
	}
	to, ok := s.Step.Next()
	if !ok {
		return s, transitionError(s.Step, "continue")
	}
	next := s
	next.Step = to
	if s.Step == StepWelcome {
		now := m.now()
		next.Draft.Status = entities.QuoteStatusDraft
		if next.Draft.CreatedAt.IsZero() {
			next.Draft.CreatedAt = now
		}
		next.Draft.UpdatedAt = now
	}
	return next, nil
}

func (m *Machine) finalized(s State, e Finalized) (State, error) {
	if s.Step != StepPayment {
		return s, transitionError(s.Step, "finalize")
	}
	if s.Draft.IsBooked() {
		return s, transitionError(s.Step, "finalize booked draft")
	}
	if s.Draft.ID == "" {
		return s, invalid(s.Step, "The quote must be saved before payment.", "id")
	}
	if e.Finalization.ReferenceCode == "" {
		return s, invalid(s.Step, "Missing reference code.", "reference_code")
	}
	next := s
	e.Finalization.Patch().Apply(&next.Draft)
	next.Draft.UpdatedAt = e.Finalization.PaidAt
	next.Step = StepConfirm
	next.PendingReference = ""
	next.PendingPaymentID = ""
	return next, nil
}

func (m *Machine) setCustomer(s State, e SetCustomer) (State, error) {
	if err := requireStep(s, "customer", StepCustomer); err != nil {
		return s, err
	}
	next := s
	next.Draft.Customer = entities.Customer{
		Name:  strings.TrimSpace(e.Customer.Name),
		Phone: strings.TrimSpace(e.Customer.Phone),
		Email: strings.TrimSpace(e.Customer.Email),
	}
	return next, nil
}

func (m *Machine) checkCustomer(c entities.Customer) error {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "customer.name")
	}
	if c.Email == "" {
		missing = append(missing, "customer.email")
	}
	if c.Phone == "" {
		missing = append(missing, "customer.phone")
	}
	if len(missing) > 0 {
		return invalid(StepCustomer, "Name, email and phone are required.", missing...)
	}

	var bad []string
	if err := m.validate.Var(c.Email, "email"); err != nil {
		bad = append(bad, "customer.email")
	}
	if countDigits(c.Phone) < 7 {
		bad = append(bad, "customer.phone")
	}
	if len(bad) > 0 {
		return invalid(StepCustomer, "Check the email address and phone number.", bad...)
	}
	return nil
}

func (m *Machine) selectSizeMode(s State, e SelectSizeMode) (State, error) {
	if err := requireStep(s, "size_mode", StepKitchen); err != nil {
		return s, err
	}
	switch e.Mode {
	case entities.SizeModeManual:
		next := s
		next.Draft.SizeMode = entities.SizeModeManual
		return next, nil
	case entities.SizeModePreset:
		id := e.PresetID
		if id == "" {
			id = s.Draft.PresetID
		}
		if id == "" {
			id = entities.DefaultPresetID
		}
		preset, ok := entities.PresetByID(id)
		if !ok {
			return s, invalid(s.Step, "Choose one of the kitchen sizes.", "preset_id")
		}
		return m.reprice(s, func(d *entities.QuoteDraft) {
			d.SizeMode = entities.SizeModePreset
			d.PresetID = preset.ID
			d.Dimensions = preset.Dimensions
			d.LinearFeet = preset.LinearFeet
		})
	}
	return s, invalid(s.Step, "Choose preset or manual sizing.", "size_mode")
}

func (m *Machine) setManualSize(s State, e SetManualSize) (State, error) {
	if err := requireStep(s, "dimensions", StepKitchen); err != nil {
		return s, err
	}
	if s.Draft.SizeMode != entities.SizeModeManual {
		return s, invalid(s.Step, "Switch to manual sizing to enter measurements.", "size_mode")
	}
	return m.reprice(s, func(d *entities.QuoteDraft) {
		d.Dimensions = e.Dimensions
		d.LinearFeet = e.LinearFeet
	})
}

// reprice applies mutate to a copy of the draft and replaces the estimate. The
// change is dropped when the new inputs cannot be priced.
func (m *Machine) reprice(s State, mutate func(*entities.QuoteDraft)) (State, error) {
	next := s
	mutate(&next.Draft)
	res, err := m.pricer.Calculate(pricing.InputFromDraft(next.Draft))
	if err != nil {
		return s, pricingValidation(s.Step, err)
	}
	next.Draft.Estimate = res.Estimate
	return next, nil
}

func pricingValidation(step Step, err error) error {
	switch {
	case errors.Is(err, pricing.ErrInvalidDimensions):
		return invalid(step, "Length and width must be between 0 and 1000 feet.", "dimensions")
	case errors.Is(err, pricing.ErrInvalidLinearFeet):
		return invalid(step, "Linear feet must be between 0 and 1000.", "linear_feet")
	case errors.Is(err, pricing.ErrInvalidTier):
		return invalid(step, "Choose Good, Better or Best.", "tier")
	case errors.Is(err, pricing.ErrInvalidMaterial):
		return invalid(step, "Choose a material.", "materials")
	case errors.Is(err, pricing.ErrInvalidAddOns):
		return invalid(step, "Plumbing moves must be between 0 and 50.", "add_ons.plumbing_move_count")
	}
	return err
}

func (m *Machine) offered(slot string) bool {
	if slot == "" {
		return false
	}
	for _, v := range m.slots {
		if v == slot {
			return true
		}
	}
	return false
}

func requireStep(s State, field string, allowed ...Step) error {
	for _, st := range allowed {
		if s.Step == st {
			return nil
		}
	}
	return invalid(s.Step, "This field cannot be changed on this screen.", field)
}

func countDigits(v string) int {
	n := 0
	for _, r := range v {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
