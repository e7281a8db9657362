package wizard

// Step is a screen of the kiosk quote wizard. Steps are strictly ordered.
type Step string

const (
	StepWelcome     Step = "welcome"
	StepCustomer    Step = "customer"
	StepKitchen     Step = "kitchen"
	StepMaterials   Step = "materials"
	StepEstimate    Step = "estimate"
	StepAppointment Step = "appointment"
	StepPayment     Step = "payment"
	StepConfirm     Step = "confirm"
)

var Steps = []Step{
	StepWelcome,
	StepCustomer,
	StepKitchen,
	StepMaterials,
	StepEstimate,
	StepAppointment,
	StepPayment,
	StepConfirm,
}

func (s Step) Index() int {
	for i, v := range Steps {
		if v == s {
			return i
		}
	}
	return -1
}

func (s Step) Valid() bool {
	return s.Index() >= 0
}

// Next returns the following step; confirm has none.
func (s Step) Next() (Step, bool) {
	i := s.Index()
	if i < 0 || i+1 >= len(Steps) {
		return "", false
	}
	return Steps[i+1], true
}

// Prev returns the previous step. Going back is allowed from customer through payment.
func (s Step) Prev() (Step, bool) {
	i := s.Index()
	if i <= 0 || s == StepConfirm {
		return "", false
	}
	return Steps[i-1], true
}

// PersistsOnContinue reports whether leaving s saves the draft.
func (s Step) PersistsOnContinue() bool {
	switch s {
	case StepCustomer, StepKitchen, StepMaterials, StepEstimate, StepAppointment:
		return true
	}
	return false
}
