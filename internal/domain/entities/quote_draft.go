package entities

import "time"

// QuoteStatus is the lifecycle of a kiosk quote draft.
//
// Status only moves forward: DRAFT -> APPOINTMENT_BOOKED, exactly once.
type QuoteStatus string

const (
	QuoteStatusDraft             QuoteStatus = "DRAFT"
	QuoteStatusAppointmentBooked QuoteStatus = "APPOINTMENT_BOOKED"
)

type SizeMode string

const (
	SizeModePreset SizeMode = "PRESET"
	SizeModeManual SizeMode = "MANUAL"
)

func (m SizeMode) Valid() bool {
	return m == SizeModePreset || m == SizeModeManual
}

// Tier is the quality/price level applied uniformly to cabinets, countertops,
// flooring and add-ons. GOOD < BETTER < BEST.
type Tier string

const (
	TierGood   Tier = "GOOD"
	TierBetter Tier = "BETTER"
	TierBest   Tier = "BEST"
)

// Tiers lists every tier in ascending order.
var Tiers = []Tier{TierGood, TierBetter, TierBest}

// Rank returns the position of t in the tier order, or -1 for an unknown tier.
func (t Tier) Rank() int {
	for i, v := range Tiers {
		if v == t {
			return i
		}
	}
	return -1
}

func (t Tier) Valid() bool {
	return t.Rank() >= 0
}

type CountertopMaterial string

const (
	CountertopQuartz  CountertopMaterial = "QUARTZ"
	CountertopGranite CountertopMaterial = "GRANITE"
)

func (m CountertopMaterial) Valid() bool {
	return m == CountertopQuartz || m == CountertopGranite
}

type FlooringMaterial string

const (
	FlooringLVP  FlooringMaterial = "LVP"
	FlooringTile FlooringMaterial = "TILE"
)

func (m FlooringMaterial) Valid() bool {
	return m == FlooringLVP || m == FlooringTile
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Dimensions struct {
	LengthFt float64 `json:"length_ft"`
	WidthFt  float64 `json:"width_ft"`
}

// AreaSqFt is the room footprint.
func (d Dimensions) AreaSqFt() float64 {
	return d.LengthFt * d.WidthFt
}

type LinearFeet struct {
	CabinetLF    float64 `json:"cabinet_lf"`
	CountertopLF float64 `json:"countertop_lf"`
}

type AddOns struct {
	PlumbingMoveCount int  `json:"plumbing_move_count"`
	IncludeDemo       bool `json:"include_demo"`
}

// Estimate is derived from the other draft fields by the pricing engine.
// Amounts are whole currency units rounded to the nearest 10.
type Estimate struct {
	Low           int64 `json:"low"`
	High          int64 `json:"high"`
	Subtotal      int64 `json:"subtotal"`
	DepositCredit int64 `json:"deposit_credit"`
}

// QuoteDraft is the persisted record of one kiosk session.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ID is empty until the store assigns one on the first upsert. Estimate is never
// edited directly; the wizard replaces it whenever a pricing input changes.
type QuoteDraft struct {
	ID                 string             `json:"id,omitempty"`
	UserID             string             `json:"user_id,omitempty"`
	Customer           Customer           `json:"customer"`
	SizeMode           SizeMode           `json:"size_mode"`
	PresetID           string             `json:"preset_id,omitempty"`
	Dimensions         Dimensions         `json:"dimensions"`
	LinearFeet         LinearFeet         `json:"linear_feet"`
	Tier               Tier               `json:"tier"`
	CountertopMaterial CountertopMaterial `json:"countertop_material"`
	FlooringMaterial   FlooringMaterial   `json:"flooring_material"`
	AddOns             AddOns             `json:"add_ons"`
	Estimate           Estimate           `json:"estimate"`
	AppointmentSlot    string             `json:"appointment_slot,omitempty"`
	Status             QuoteStatus        `json:"status"`
	DepositPaid        bool               `json:"deposit_paid"`
	ReferenceCode      string             `json:"reference_code,omitempty"`
	PaymentID          string             `json:"payment_id,omitempty"`
	PaidAt             time.Time          `json:"paid_at,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (d QuoteDraft) IsBooked() bool {
	return d.Status == QuoteStatusAppointmentBooked
}

// QuoteDraftPatch holds the fields a partial update may change. Nil means untouched.
type QuoteDraftPatch struct {
	Customer        *Customer
	AppointmentSlot *string
	Estimate        *Estimate
	Status          *QuoteStatus
	DepositPaid     *bool
	ReferenceCode   *string
	PaymentID       *string
	PaidAt          *time.Time
}

func (p QuoteDraftPatch) IsEmpty() bool {
	return p.Customer == nil && p.AppointmentSlot == nil && p.Estimate == nil && p.Status == nil &&
		p.DepositPaid == nil && p.ReferenceCode == nil && p.PaymentID == nil && p.PaidAt == nil
}

// Apply copies the non-nil patch fields onto d.
func (p QuoteDraftPatch) Apply(d *QuoteDraft) {
	if p.Customer != nil {
		d.Customer = *p.Customer
	}
	if p.AppointmentSlot != nil {
		d.AppointmentSlot = *p.AppointmentSlot
	}
	if p.Estimate != nil {
		d.Estimate = *p.Estimate
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.DepositPaid != nil {
		d.DepositPaid = *p.DepositPaid
	}
	if p.ReferenceCode != nil {
		d.ReferenceCode = *p.ReferenceCode
	}
	if p.PaymentID != nil {
		d.PaymentID = *p.PaymentID
	}
	if p.PaidAt != nil {
		d.PaidAt = *p.PaidAt
	}
}

// Finalization is the single atomic update that books a draft.
type Finalization struct {
	ReferenceCode string
	PaymentID     string
	PaidAt        time.Time
}

// Patch expresses the finalization as a partial update.
func (f Finalization) Patch() QuoteDraftPatch {
	status := QuoteStatusAppointmentBooked
	paid := true
	ref := f.ReferenceCode
	paymentID := f.PaymentID
	paidAt := f.PaidAt
	return QuoteDraftPatch{
		Status:        &status,
		DepositPaid:   &paid,
		ReferenceCode: &ref,
		PaymentID:     &paymentID,
		PaidAt:        &paidAt,
	}
}
