package response

import (
	"time"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/domain/pricing"
	"kiosk_quote/internal/usecase"
	"kiosk_quote/pkg"

	"github.com/shopspring/decimal"
)

type NotificationResponse struct {
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type DraftResponse struct {
	ID                 string              `json:"id,omitempty"`
	UserID             string              `json:"user_id,omitempty"`
	Customer           entities.Customer   `json:"customer"`
	SizeMode           string              `json:"size_mode"`
	PresetID           string              `json:"preset_id,omitempty"`
	Dimensions         entities.Dimensions `json:"dimensions"`
	LinearFeet         entities.LinearFeet `json:"linear_feet"`
	Tier               string              `json:"tier"`
	CountertopMaterial string              `json:"countertop_material"`
	FlooringMaterial   string              `json:"flooring_material"`
	AddOns             entities.AddOns     `json:"add_ons"`
	Estimate           entities.Estimate   `json:"estimate"`
	AppointmentSlot    string              `json:"appointment_slot,omitempty"`
	Status             string              `json:"status"`
	DepositPaid        bool                `json:"deposit_paid"`
	ReferenceCode      string              `json:"reference_code,omitempty"`
	PaidAt             *time.Time          `json:"paid_at,omitempty"`
}

// BreakdownResponse carries the unrounded line costs as decimal strings.
type BreakdownResponse struct {
	Cabinets              decimal.Decimal `json:"cabinets"`
	CabinetInstall        decimal.Decimal `json:"cabinet_install"`
	Countertops           decimal.Decimal `json:"countertops"`
	CountertopFabrication decimal.Decimal `json:"countertop_fabrication"`
	CountertopAreaSqFt    decimal.Decimal `json:"countertop_area_sqft"`
	Flooring              decimal.Decimal `json:"flooring"`
	FloorAreaSqFt         decimal.Decimal `json:"floor_area_sqft"`
	Plumbing              decimal.Decimal `json:"plumbing"`
	Demo                  decimal.Decimal `json:"demo"`
	Total                 decimal.Decimal `json:"total"`
}

type SessionResponse struct {
	SessionID     string                 `json:"session_id"`
	TerminalID    string                 `json:"terminal_id,omitempty"`
	Step          string                 `json:"step"`
	StepIndex     int                    `json:"step_index"`
	Draft         DraftResponse          `json:"draft"`
	Breakdown     BreakdownResponse      `json:"breakdown"`
	Notifications []NotificationResponse `json:"notifications"`
}

// ErrorResponse is an AppError body that may carry the session the failure
// left untouched, so the kiosk can keep rendering it.
type ErrorResponse struct {
	pkg.HTTPError
	Session *SessionResponse `json:"session,omitempty"`
}

type EstimateResponse struct {
	Estimate  entities.Estimate `json:"estimate"`
	Breakdown BreakdownResponse `json:"breakdown"`
}

type CatalogResponse struct {
	Presets             []entities.Preset `json:"presets"`
	Tiers               []string          `json:"tiers"`
	CountertopMaterials []string          `json:"countertop_materials"`
	FlooringMaterials   []string          `json:"flooring_materials"`
	AppointmentSlots    []string          `json:"appointment_slots"`
	DepositCredit       int64             `json:"deposit_credit"`
}

func FromSessionView(v usecase.SessionView) SessionResponse {
	notes := make([]NotificationResponse, 0, len(v.Notifications))
	for _, n := range v.Notifications {
		notes = append(notes, NotificationResponse{Kind: string(n.Kind), Message: n.Message, CreatedAt: n.CreatedAt})
	}
	return SessionResponse{
		SessionID:     v.SessionID,
		TerminalID:    v.TerminalID,
		Step:          string(v.Step),
		StepIndex:     v.Step.Index(),
		Draft:         FromDraft(v.Draft),
		Breakdown:     FromBreakdown(v.Breakdown),
		Notifications: notes,
	}
}

func FromDraft(d entities.QuoteDraft) DraftResponse {
	out := DraftResponse{
		ID:                 d.ID,
		UserID:             d.UserID,
		Customer:           d.Customer,
		SizeMode:           string(d.SizeMode),
		PresetID:           d.PresetID,
		Dimensions:         d.Dimensions,
		LinearFeet:         d.LinearFeet,
		Tier:               string(d.Tier),
		CountertopMaterial: string(d.CountertopMaterial),
		FlooringMaterial:   string(d.FlooringMaterial),
		AddOns:             d.AddOns,
		Estimate:           d.Estimate,
		AppointmentSlot:    d.AppointmentSlot,
		Status:             string(d.Status),
		DepositPaid:        d.DepositPaid,
		ReferenceCode:      d.ReferenceCode,
	}
	if !d.PaidAt.IsZero() {
		paidAt := d.PaidAt
		out.PaidAt = &paidAt
	}
	return out
}

func FromBreakdown(b pricing.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		Cabinets:              b.Cabinets.Round(2),
		CabinetInstall:        b.CabinetInstall.Round(2),
		Countertops:           b.Countertops.Round(2),
		CountertopFabrication: b.CountertopFabrication.Round(2),
		CountertopAreaSqFt:    b.CountertopAreaSqFt.Round(2),
		Flooring:              b.Flooring.Round(2),
		FloorAreaSqFt:         b.FloorAreaSqFt.Round(2),
		Plumbing:              b.Plumbing.Round(2),
		Demo:                  b.Demo.Round(2),
		Total:                 b.Total.Round(2),
	}
}

func FromEstimate(res pricing.Result) EstimateResponse {
	return EstimateResponse{Estimate: res.Estimate, Breakdown: FromBreakdown(res.Breakdown)}
}

func FromCatalog(c usecase.Catalog) CatalogResponse {
	out := CatalogResponse{
		Presets:          c.Presets,
		AppointmentSlots: c.AppointmentSlots,
		DepositCredit:    c.DepositCredit,
	}
	for _, t := range c.Tiers {
		out.Tiers = append(out.Tiers, string(t))
	}
	for _, m := range c.CountertopMaterials {
		out.CountertopMaterials = append(out.CountertopMaterials, string(m))
	}
	for _, m := range c.FlooringMaterials {
		out.FlooringMaterials = append(out.FlooringMaterials, string(m))
	}
	return out
}
