package entities

// Preset is a named room template offered on the kitchen step.
type Preset struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Dimensions Dimensions `json:"dimensions"`
	LinearFeet LinearFeet `json:"linear_feet"`
}

const (
	PresetSmall  = "SMALL"
	PresetMedium = "MEDIUM"
	PresetLarge  = "LARGE"

	DefaultPresetID = PresetMedium
)

var presets = []Preset{
	{ID: PresetSmall, Name: "Small kitchen", Dimensions: Dimensions{LengthFt: 10, WidthFt: 10}, LinearFeet: LinearFeet{CabinetLF: 18, CountertopLF: 12}},
	{ID: PresetMedium, Name: "Medium kitchen", Dimensions: Dimensions{LengthFt: 12, WidthFt: 12}, LinearFeet: LinearFeet{CabinetLF: 25, CountertopLF: 16}},
	{ID: PresetLarge, Name: "Large kitchen", Dimensions: Dimensions{LengthFt: 15, WidthFt: 14}, LinearFeet: LinearFeet{CabinetLF: 35, CountertopLF: 24}},
}

// Presets returns a copy of the room template catalog.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

func PresetByID(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// DefaultAppointmentSlots is used when no slot list is configured.
var DefaultAppointmentSlots = []string{
	"Monday 9:00 AM - 11:00 AM",
	"Monday 1:00 PM - 3:00 PM",
	"Tuesday 9:00 AM - 11:00 AM",
	"Tuesday 1:00 PM - 3:00 PM",
	"Wednesday 9:00 AM - 11:00 AM",
	"Wednesday 1:00 PM - 3:00 PM",
}
