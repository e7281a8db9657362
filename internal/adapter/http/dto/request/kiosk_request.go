package request

import (
	"errors"
	"strings"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/domain/pricing"
	"kiosk_quote/internal/domain/wizard"
)

var (
	ErrEmptyMaterials = errors.New("at least one material field is required")
	ErrUnknownPreset  = errors.New("unknown preset")
	ErrMissingSize    = errors.New("preset_id or dimensions is required")
)

type StartSessionRequest struct {
	TerminalID string `json:"terminal_id" binding:"max=64"`
}

type CustomerRequest struct {
	Name  string `json:"name" binding:"max=120"`
	Phone string `json:"phone" binding:"max=32"`
	Email string `json:"email" binding:"max=254"`
}

func (r CustomerRequest) ToEvents() []wizard.Event {
	return []wizard.Event{wizard.SetCustomer{Customer: entities.Customer{
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
	}}}
}

type DimensionsRequest struct {
	LengthFt float64 `json:"length_ft"`
	WidthFt  float64 `json:"width_ft"`
}

type LinearFeetRequest struct {
	CabinetLF    float64 `json:"cabinet_lf"`
	CountertopLF float64 `json:"countertop_lf"`
}

func (r *DimensionsRequest) toEntity() entities.Dimensions {
	return entities.Dimensions{LengthFt: r.LengthFt, WidthFt: r.WidthFt}
}

func (r *LinearFeetRequest) toEntity() entities.LinearFeet {
	if r == nil {
		return entities.LinearFeet{}
	}
	return entities.LinearFeet{CabinetLF: r.CabinetLF, CountertopLF: r.CountertopLF}
}

// SizeRequest selects the sizing mode. In MANUAL mode the measurements, when
// present, are applied in the same request. A block that is left out keeps the
// draft's current values.
type SizeRequest struct {
	Mode       string             `json:"mode" binding:"required,size_mode"`
	PresetID   string             `json:"preset_id"`
	Dimensions *DimensionsRequest `json:"dimensions"`
	LinearFeet *LinearFeetRequest `json:"linear_feet"`
}

func (r SizeRequest) ToEvents() []wizard.Event {
	mode := entities.SizeMode(strings.ToUpper(strings.TrimSpace(r.Mode)))
	events := []wizard.Event{wizard.SelectSizeMode{
		Mode:     mode,
		PresetID: strings.ToUpper(strings.TrimSpace(r.PresetID)),
	}}
	if mode != entities.SizeModeManual {
		return events
	}
	switch {
	case r.Dimensions != nil && r.LinearFeet != nil:
		events = append(events, wizard.SetManualSize{
			Dimensions: r.Dimensions.toEntity(),
			LinearFeet: r.LinearFeet.toEntity(),
		})
	case r.Dimensions != nil:
		events = append(events, wizard.SetManualDimensions{Dimensions: r.Dimensions.toEntity()})
	case r.LinearFeet != nil:
		events = append(events, wizard.SetManualLinearFeet{LinearFeet: r.LinearFeet.toEntity()})
	}
	return events
}

// MaterialsRequest updates any subset of the material choices.
type MaterialsRequest struct {
	Tier               string `json:"tier" binding:"omitempty,tier"`
	CountertopMaterial string `json:"countertop_material" binding:"omitempty,countertop"`
	FlooringMaterial   string `json:"flooring_material" binding:"omitempty,flooring"`
}

func (r MaterialsRequest) ToEvents() ([]wizard.Event, error) {
	var events []wizard.Event
	if v := normalize(r.Tier); v != "" {
		events = append(events, wizard.SetTier{Tier: entities.Tier(v)})
	}
	if v := normalize(r.CountertopMaterial); v != "" {
		events = append(events, wizard.SetCountertopMaterial{Material: entities.CountertopMaterial(v)})
	}
	if v := normalize(r.FlooringMaterial); v != "" {
		events = append(events, wizard.SetFlooringMaterial{Material: entities.FlooringMaterial(v)})
	}
	if len(events) == 0 {
		return nil, ErrEmptyMaterials
	}
	return events, nil
}

type AddOnsRequest struct {
	PlumbingMoveCount int  `json:"plumbing_move_count"`
	IncludeDemo       bool `json:"include_demo"`
}

func (r AddOnsRequest) toEntity() entities.AddOns {
	return entities.AddOns{PlumbingMoveCount: r.PlumbingMoveCount, IncludeDemo: r.IncludeDemo}
}

func (r AddOnsRequest) ToEvents() []wizard.Event {
	return []wizard.Event{wizard.SetAddOns{AddOns: r.toEntity()}}
}

type AppointmentRequest struct {
	Slot string `json:"slot" binding:"required"`
}

func (r AppointmentRequest) ToEvents() []wizard.Event {
	return []wizard.Event{wizard.SelectAppointmentSlot{Slot: r.Slot}}
}

// EstimatePreviewRequest prices a configuration outside any session. The room
// comes from PresetID or, when it is empty, from Dimensions and LinearFeet.
type EstimatePreviewRequest struct {
	PresetID           string             `json:"preset_id"`
	Dimensions         *DimensionsRequest `json:"dimensions"`
	LinearFeet         *LinearFeetRequest `json:"linear_feet"`
	Tier               string             `json:"tier" binding:"required,tier"`
	CountertopMaterial string             `json:"countertop_material" binding:"required,countertop"`
	FlooringMaterial   string             `json:"flooring_material" binding:"required,flooring"`
	AddOns             AddOnsRequest      `json:"add_ons"`
}

func (r EstimatePreviewRequest) ToInput() (pricing.Input, error) {
	in := pricing.Input{
		Tier:               entities.Tier(normalize(r.Tier)),
		CountertopMaterial: entities.CountertopMaterial(normalize(r.CountertopMaterial)),
		FlooringMaterial:   entities.FlooringMaterial(normalize(r.FlooringMaterial)),
		AddOns:             r.AddOns.toEntity(),
	}
	if id := normalize(r.PresetID); id != "" {
		preset, ok := entities.PresetByID(id)
		if !ok {
			return pricing.Input{}, ErrUnknownPreset
		}
		in.Dimensions = preset.Dimensions
		in.LinearFeet = preset.LinearFeet
		return in, nil
	}
	if r.Dimensions == nil {
		return pricing.Input{}, ErrMissingSize
	}
	in.Dimensions = r.Dimensions.toEntity()
	in.LinearFeet = r.LinearFeet.toEntity()
	return in, nil
}

func normalize(v string) string {
	return strings.ToUpper(strings.TrimSpace(v))
}
