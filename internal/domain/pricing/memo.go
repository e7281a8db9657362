package pricing

// Calculator is what the wizard needs from the pricing engine.
type Calculator interface {
	Calculate(in Input) (Result, error)
}

// Memo caches the last result so unchanged inputs are not re-priced.
// A Memo belongs to a single wizard and is not safe for concurrent use.
type Memo struct {
	calc  Calculator
	last  Input
	res   Result
	ok    bool
	calls int
}

func NewMemo(calc Calculator) *Memo {
	return &Memo{calc: calc}
}

func (m *Memo) Calculate(in Input) (Result, error) {
	if m.ok && in == m.last {
		return m.res, nil
	}
	res, err := m.calc.Calculate(in)
	m.calls++
	if err != nil {
		return Result{}, err
	}
	m.last, m.res, m.ok = in, res, true
	return res, nil
}

// Computations reports how many times the underlying calculator ran.
func (m *Memo) Computations() int {
	return m.calls
}
