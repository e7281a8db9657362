package pricing

import (
	"errors"
	"math"

	"kiosk_quote/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDimensions = errors.New("room length and width must be positive and at most 1000 ft")
	ErrInvalidLinearFeet = errors.New("linear feet must be between 0 and 1000")
	ErrInvalidTier       = errors.New("invalid tier")
	ErrInvalidMaterial   = errors.New("invalid material")
	ErrInvalidAddOns     = errors.New("plumbing move count must be between 0 and 50")
	ErrEstimateOverflow  = errors.New("estimate exceeds representable range")
)

// Upper bounds for a single kitchen.
const (
	MaxRoomSideFt    = 1000
	MaxLinearFeet    = 1000
	MaxPlumbingMoves = 50
)

var (
	lowFactor  = decimal.RequireFromString("0.92")
	highFactor = decimal.RequireFromString("1.08")
	inchesInFt = decimal.NewFromInt(12)
)

// Input is everything the price of a draft depends on. It is comparable so it
// can key the memo.
type Input struct {
	Dimensions         entities.Dimensions
	LinearFeet         entities.LinearFeet
	Tier               entities.Tier
	CountertopMaterial entities.CountertopMaterial
	FlooringMaterial   entities.FlooringMaterial
	AddOns             entities.AddOns
}

func InputFromDraft(d entities.QuoteDraft) Input {
	return Input{
		Dimensions:         d.Dimensions,
		LinearFeet:         d.LinearFeet,
		Tier:               d.Tier,
		CountertopMaterial: d.CountertopMaterial,
		FlooringMaterial:   d.FlooringMaterial,
		AddOns:             d.AddOns,
	}
}

// Breakdown lists the unrounded cost of each line.
type Breakdown struct {
	Cabinets              decimal.Decimal
	CabinetInstall        decimal.Decimal
	Countertops           decimal.Decimal
	CountertopFabrication decimal.Decimal
	CountertopAreaSqFt    decimal.Decimal
	Flooring              decimal.Decimal
	FloorAreaSqFt         decimal.Decimal
	Plumbing              decimal.Decimal
	Demo                  decimal.Decimal
	Total                 decimal.Decimal
}

type Result struct {
	Estimate  entities.Estimate
	Breakdown Breakdown
}

// Engine prices drafts against a rate table. It has no state besides the rates.
type Engine struct {
	rates RateTable
}

func NewEngine(rates RateTable) (*Engine, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Engine{rates: rates}, nil
}

// DefaultEngine prices with DefaultRates.
func DefaultEngine() *Engine {
	e, err := NewEngine(DefaultRates())
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Engine) Rates() RateTable {
	return e.rates
}

// Calculate prices in. Invalid input is rejected, never clamped.
func (e *Engine) Calculate(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}
	r := e.rates

	counterRates, ok := r.Countertop[in.CountertopMaterial]
	if !ok {
		return Result{}, ErrInvalidMaterial
	}
	floorRates, ok := r.Flooring[in.FlooringMaterial]
	if !ok {
		return Result{}, ErrInvalidMaterial
	}

	cabinetLF := decimal.NewFromFloat(in.LinearFeet.CabinetLF)
	counterLF := decimal.NewFromFloat(in.LinearFeet.CountertopLF)

	var b Breakdown
	b.Cabinets = r.CabinetBasePerLF.Add(r.CabinetTierDelta[in.Tier]).Mul(cabinetLF)
	b.CabinetInstall = r.CabinetInstallPerLF.Mul(cabinetLF)

	b.CountertopAreaSqFt = counterLF.Mul(r.CountertopDepthInches).Div(inchesInFt)
	b.Countertops = counterRates[in.Tier].Mul(b.CountertopAreaSqFt)
	b.CountertopFabrication = r.CountertopFabPerLF.Mul(counterLF)

	b.FloorAreaSqFt = decimal.NewFromFloat(in.Dimensions.LengthFt).Mul(decimal.NewFromFloat(in.Dimensions.WidthFt))
	b.Flooring = floorRates[in.Tier].Mul(b.FloorAreaSqFt)

	b.Plumbing = r.PlumbingMove[in.Tier].Mul(decimal.NewFromInt(int64(in.AddOns.PlumbingMoveCount)))
	if in.AddOns.IncludeDemo {
		b.Demo = r.DemoAllowance
	}

	b.Total = decimal.Sum(b.Cabinets, b.CabinetInstall, b.Countertops, b.CountertopFabrication, b.Flooring, b.Plumbing, b.Demo)

	low, err := roundToTen(b.Total.Mul(lowFactor))
	if err != nil {
		return Result{}, err
	}
	high, err := roundToTen(b.Total.Mul(highFactor))
	if err != nil {
		return Result{}, err
	}
	subtotal, err := roundToTen(b.Total)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Estimate: entities.Estimate{
			Low:           low,
			High:          high,
			Subtotal:      subtotal,
			DepositCredit: r.DepositCredit.Round(0).IntPart(),
		},
		Breakdown: b,
	}, nil
}

var maxWholeDollars = decimal.NewFromInt(math.MaxInt64)

// roundToTen rounds half away from zero to the nearest multiple of 10. Values
// outside int64 fail instead of wrapping.
func roundToTen(d decimal.Decimal) (int64, error) {
	rounded := d.Round(-1)
	if rounded.IsNegative() || rounded.GreaterThan(maxWholeDollars) {
		return 0, ErrEstimateOverflow
	}
	return rounded.IntPart(), nil
}

func validate(in Input) error {
	l, w := in.Dimensions.LengthFt, in.Dimensions.WidthFt
	if !finite(l) || !finite(w) || l <= 0 || w <= 0 || l > MaxRoomSideFt || w > MaxRoomSideFt {
		return ErrInvalidDimensions
	}
	c, t := in.LinearFeet.CabinetLF, in.LinearFeet.CountertopLF
	if !finite(c) || !finite(t) || c < 0 || t < 0 || c > MaxLinearFeet || t > MaxLinearFeet {
		return ErrInvalidLinearFeet
	}
	if !in.Tier.Valid() {
		return ErrInvalidTier
	}
	if !in.CountertopMaterial.Valid() || !in.FlooringMaterial.Valid() {
		return ErrInvalidMaterial
	}
	if in.AddOns.PlumbingMoveCount < 0 || in.AddOns.PlumbingMoveCount > MaxPlumbingMoves {
		return ErrInvalidAddOns
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
