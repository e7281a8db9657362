package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/domain/pricing"
	"kiosk_quote/internal/domain/wizard"
	"kiosk_quote/internal/usecase/interfaces"
	"kiosk_quote/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrSessionNotFound    = errors.New("kiosk session not found")
	ErrTransitionInFlight = errors.New("another transition is in progress for this session")
	ErrNotAFieldEvent     = errors.New("event is not a field edit")
	ErrAlreadyBooked      = errors.New("quote already booked")
	ErrPersistence        = errors.New("could not save quote")
	ErrFinalization       = errors.New("could not finalize booking")
	ErrDepositDeclined    = errors.New("deposit payment declined")
	ErrPDFUnavailable     = errors.New("quote pdf renderer not configured")
)

// IKioskUseCase drives kiosk wizard sessions.
//
// Every mutating operation runs under the session's in-flight guard; a second
// call while one is running fails with ErrTransitionInFlight. Failed saves and
// failed finalizations leave the session exactly where it was.
type IKioskUseCase interface {
	StartSession(ctx context.Context, terminalID string) (SessionView, error)
	GetSession(ctx context.Context, sessionID string) (SessionView, error)
	ApplyFields(ctx context.Context, sessionID string, events ...wizard.Event) (SessionView, error)
	Continue(ctx context.Context, sessionID string) (SessionView, error)
	Back(ctx context.Context, sessionID string) (SessionView, error)
	Reset(ctx context.Context, sessionID string) (SessionView, error)
	QuotePDF(ctx context.Context, sessionID string) ([]byte, error)
	Preview(ctx context.Context, in pricing.Input) (pricing.Result, error)
	Catalog() Catalog
}

// SessionView is a snapshot of a session returned to the kiosk screen.
type SessionView struct {
	SessionID     string
	TerminalID    string
	Step          wizard.Step
	Draft         entities.QuoteDraft
	Breakdown     pricing.Breakdown
	Notifications []entities.Notification
}

// Catalog lists everything the kiosk offers.
type Catalog struct {
	Presets             []entities.Preset
	Tiers               []entities.Tier
	CountertopMaterials []entities.CountertopMaterial
	FlooringMaterials   []entities.FlooringMaterial
	AppointmentSlots    []string
	DepositCredit       int64
}

// DepositSettings shapes the payment request sent for the appointment deposit.
type DepositSettings struct {
	PaymentMethodID    string
	FallbackPayerEmail string
	Description        string
}

type KioskUseCase struct {
	store    interfaces.IQuoteStore
	gateway  interfaces.IPaymentGateway
	lock     interfaces.IFinalizationLock
	users    interfaces.ICurrentUserLookup
	notifier interfaces.INotifier
	pdf      interfaces.IQuotePDFRenderer
	metrics  interfaces.IKioskMetrics
	log      *logger.Logger

	engine       *pricing.Engine
	slots        []string
	deposit      DepositSettings
	sessionTTL   time.Duration
	now          func() time.Time
	newReference func(time.Time) string

	mu       sync.Mutex
	sessions map[string]*kioskSession
}

var _ IKioskUseCase = (*KioskUseCase)(nil)

type KioskOption func(*KioskUseCase)

func WithCurrentUserLookup(users interfaces.ICurrentUserLookup) KioskOption {
	return func(u *KioskUseCase) { u.users = users }
}

func WithNotifier(n interfaces.INotifier) KioskOption {
	return func(u *KioskUseCase) { u.notifier = n }
}

func WithPDFRenderer(r interfaces.IQuotePDFRenderer) KioskOption {
	return func(u *KioskUseCase) { u.pdf = r }
}

func WithMetrics(m interfaces.IKioskMetrics) KioskOption {
	return func(u *KioskUseCase) { u.metrics = m }
}

func WithLogger(l *logger.Logger) KioskOption {
	return func(u *KioskUseCase) { u.log = l }
}

func WithPricingEngine(e *pricing.Engine) KioskOption {
	return func(u *KioskUseCase) { u.engine = e }
}

func WithAppointmentSlots(slots []string) KioskOption {
	return func(u *KioskUseCase) { u.slots = slots }
}

func WithDepositSettings(s DepositSettings) KioskOption {
	return func(u *KioskUseCase) { u.deposit = s }
}

func WithSessionTTL(ttl time.Duration) KioskOption {
	return func(u *KioskUseCase) { u.sessionTTL = ttl }
}

func WithClock(now func() time.Time) KioskOption {
	return func(u *KioskUseCase) { u.now = now }
}

func WithReferenceGenerator(gen func(time.Time) string) KioskOption {
	return func(u *KioskUseCase) { u.newReference = gen }
}

func NewKioskUseCase(store interfaces.IQuoteStore, gateway interfaces.IPaymentGateway, lock interfaces.IFinalizationLock, opts ...KioskOption) *KioskUseCase {
	u := &KioskUseCase{
		store:        store,
		gateway:      gateway,
		lock:         lock,
		log:          logger.Nop(),
		engine:       pricing.DefaultEngine(),
		slots:        entities.DefaultAppointmentSlots,
		sessionTTL:   2 * time.Hour,
		now:          func() time.Time { return time.Now().UTC() },
		newReference: NewReferenceCode,
		sessions:     map[string]*kioskSession{},
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.metrics == nil {
		u.metrics = noopMetrics{}
	}
	if len(u.slots) == 0 {
		u.slots = entities.DefaultAppointmentSlots
	}
	if strings.TrimSpace(u.deposit.Description) == "" {
		u.deposit.Description = "Kitchen remodel design deposit"
	}
	return u
}

func (u *KioskUseCase) StartSession(ctx context.Context, terminalID string) (SessionView, error) {
	terminalID = strings.TrimSpace(terminalID)
	now := u.now()
	u.evictIdle(ctx, now)

	memo := pricing.NewMemo(u.engine)
	machine := wizard.NewMachine(memo, u.slots, wizard.WithClock(u.now))
	s := &kioskSession{
		id:         uuid.NewString(),
		terminalID: terminalID,
		machine:    machine,
		state:      machine.NewState(),
		lastSeen:   now,
	}

	u.mu.Lock()
	u.sessions[s.id] = s
	u.mu.Unlock()

	ctx = u.log.WithSessionID(ctx, s.id)
	u.log.Info(ctx, fmt.Sprintf("[kiosk][usecase] session started terminal_id=%q", terminalID))
	return u.view(s), nil
}

func (u *KioskUseCase) GetSession(ctx context.Context, sessionID string) (SessionView, error) {
	s, err := u.lookup(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	s.touch(u.now())
	return u.view(s), nil
}

// ApplyFields applies field edits in order. Either all of them take effect or,
// on the first rejected edit, none do.
func (u *KioskUseCase) ApplyFields(ctx context.Context, sessionID string, events ...wizard.Event) (SessionView, error) {
	s, err := u.acquire(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	defer s.release()
	ctx = u.log.WithSessionID(ctx, s.id)

	cur := s.current()
	next := cur
	for _, ev := range events {
		if !isFieldEvent(ev) {
			return u.view(s), fmt.Errorf("%w: %s", ErrNotAFieldEvent, wizard.EventName(ev))
		}
		next, err = s.machine.Apply(next, ev)
		if err != nil {
			return u.reject(ctx, s, cur, err)
		}
	}
	s.commit(next, u.now())
	u.log.Debug(ctx, fmt.Sprintf("[kiosk][usecase] fields applied step=%s count=%d subtotal=%d", next.Step, len(events), next.Draft.Estimate.Subtotal))
	return u.view(s), nil
}

func (u *KioskUseCase) Continue(ctx context.Context, sessionID string) (SessionView, error) {
	s, err := u.acquire(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	defer s.release()
	ctx = u.log.WithSessionID(ctx, s.id)

	cur := s.current()
	if cur.Draft.IsBooked() {
		u.log.Warn(ctx, "[kiosk][usecase] continue on booked draft")
		return u.view(s), ErrAlreadyBooked
	}
	if cur.Step == wizard.StepPayment {
		return u.finalize(ctx, s, cur)
	}

	next, err := s.machine.Apply(cur, wizard.Continue{})
	if err != nil {
		return u.reject(ctx, s, cur, err)
	}
	if cur.Step == wizard.StepWelcome {
		next = u.attachUser(ctx, s, next)
	}
	if cur.Step.PersistsOnContinue() {
		saved, err := u.save(ctx, s, next)
		if err != nil {
			u.notify(ctx, s, entities.NotificationError, "We couldn't save your progress. Please try again.")
			return u.view(s), err
		}
		next = saved
	}

	s.commit(next, u.now())
	u.metrics.Transition(string(cur.Step), string(next.Step))
	u.log.Info(ctx, fmt.Sprintf("[kiosk][usecase] continue from=%s to=%s draft_id=%s", cur.Step, next.Step, next.Draft.ID))
	return u.view(s), nil
}

func (u *KioskUseCase) Back(ctx context.Context, sessionID string) (SessionView, error) {
	s, err := u.acquire(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	defer s.release()
	ctx = u.log.WithSessionID(ctx, s.id)

	cur := s.current()
	next, err := s.machine.Apply(cur, wizard.Back{})
	if err != nil {
		return u.reject(ctx, s, cur, err)
	}
	s.commit(next, u.now())
	u.metrics.Transition(string(cur.Step), string(next.Step))
	u.log.Info(ctx, fmt.Sprintf("[kiosk][usecase] back from=%s to=%s", cur.Step, next.Step))
	return u.view(s), nil
}

// Reset starts a new customer on the same session. Only allowed from confirm.
func (u *KioskUseCase) Reset(ctx context.Context, sessionID string) (SessionView, error) {
	s, err := u.acquire(sessionID)
	if err != nil {
		return SessionView{}, err
	}
	defer s.release()
	ctx = u.log.WithSessionID(ctx, s.id)

	cur := s.current()
	next, err := s.machine.Apply(cur, wizard.Reset{})
	if err != nil {
		return u.reject(ctx, s, cur, err)
	}
	s.commit(next, u.now())
	u.metrics.Transition(string(cur.Step), string(next.Step))
	u.log.Info(ctx, fmt.Sprintf("[kiosk][usecase] reset previous_draft_id=%s", cur.Draft.ID))
	return u.view(s), nil
}

func (u *KioskUseCase) QuotePDF(ctx context.Context, sessionID string) ([]byte, error) {
	s, err := u.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if u.pdf == nil {
		return nil, ErrPDFUnavailable
	}
	d := s.current().Draft
	res, err := u.engine.Calculate(pricing.InputFromDraft(d))
	if err != nil {
		return nil, err
	}
	b, err := u.pdf.Render(d, res.Breakdown)
	if err != nil {
		u.log.Error(u.log.WithSessionID(ctx, s.id), "[kiosk][usecase] pdf render failed", err)
		return nil, err
	}
	return b, nil
}

// Preview prices an arbitrary input without touching any session.
func (u *KioskUseCase) Preview(ctx context.Context, in pricing.Input) (pricing.Result, error) {
	return u.engine.Calculate(in)
}

func (u *KioskUseCase) Catalog() Catalog {
	return Catalog{
		Presets:             entities.Presets(),
		Tiers:               append([]entities.Tier(nil), entities.Tiers...),
		CountertopMaterials: []entities.CountertopMaterial{entities.CountertopQuartz, entities.CountertopGranite},
		FlooringMaterials:   []entities.FlooringMaterial{entities.FlooringLVP, entities.FlooringTile},
		AppointmentSlots:    append([]string(nil), u.slots...),
		DepositCredit:       u.engine.Rates().DepositCredit.IntPart(),
	}
}

// save upserts the draft of st and returns st with the store-assigned id.
// On error st is returned unchanged.
func (u *KioskUseCase) save(ctx context.Context, s *kioskSession, st wizard.State) (wizard.State, error) {
	d := st.Draft
	d.Status = entities.QuoteStatusDraft
	d.UpdatedAt = u.now()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = d.UpdatedAt
	}

	start := time.Now()
	id, err := u.store.Upsert(ctx, d)
	u.metrics.ObserveStore("upsert", time.Since(start))
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("[kiosk][usecase] upsert failed step=%s draft_id=%s", st.Step, d.ID), err)
		return st, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	saved := st
	saved.Draft = d
	saved, err = s.machine.Apply(saved, wizard.Saved{ID: id})
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("[kiosk][usecase] store returned unusable id=%q", id), err)
		return st, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return saved, nil
}

func (u *KioskUseCase) attachUser(ctx context.Context, s *kioskSession, st wizard.State) wizard.State {
	if u.users == nil {
		return st
	}
	userID, ok := u.users.CurrentUserID(ctx)
	if !ok || strings.TrimSpace(userID) == "" {
		return st
	}
	next, err := s.machine.Apply(st, wizard.AttachUser{UserID: userID})
	if err != nil {
		u.log.Warn(ctx, fmt.Sprintf("[kiosk][usecase] attach user skipped err=%v", err))
		return st
	}
	return next
}

// reject reports a refused transition and returns the untouched session.
func (u *KioskUseCase) reject(ctx context.Context, s *kioskSession, cur wizard.State, err error) (SessionView, error) {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		u.metrics.ValidationFailure(string(verr.Step))
		u.notify(ctx, s, entities.NotificationError, verr.Message)
		u.log.Info(ctx, fmt.Sprintf("[kiosk][usecase] validation failed step=%s fields=%v", verr.Step, verr.Fields))
	default:
		u.log.Warn(ctx, fmt.Sprintf("[kiosk][usecase] transition refused step=%s err=%v", cur.Step, err))
	}
	return u.view(s), err
}

func (u *KioskUseCase) notify(ctx context.Context, s *kioskSession, kind entities.NotificationKind, message string) {
	s.push(entities.Notification{Kind: kind, Message: message, CreatedAt: u.now()})
	if u.notifier != nil {
		u.notifier.Notify(ctx, s.id, kind, message)
	}
}

func (u *KioskUseCase) view(s *kioskSession) SessionView {
	st, toasts := s.snapshot()
	v := SessionView{
		SessionID:     s.id,
		TerminalID:    s.terminalID,
		Step:          st.Step,
		Draft:         st.Draft,
		Notifications: toasts,
	}
	if res, err := u.engine.Calculate(pricing.InputFromDraft(st.Draft)); err == nil {
		v.Breakdown = res.Breakdown
	}
	return v
}

func (u *KioskUseCase) lookup(sessionID string) (*kioskSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	u.mu.Lock()
	s, ok := u.sessions[sessionID]
	u.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (u *KioskUseCase) acquire(sessionID string) (*kioskSession, error) {
	s, err := u.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrTransitionInFlight
	}
	return s, nil
}

func (u *KioskUseCase) evictIdle(ctx context.Context, now time.Time) {
	if u.sessionTTL <= 0 {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	for id, s := range u.sessions {
		if s.busy.Load() || now.Sub(s.seen()) < u.sessionTTL {
			continue
		}
		delete(u.sessions, id)
		u.log.Info(u.log.WithSessionID(ctx, id), "[kiosk][usecase] idle session evicted")
	}
}

func isFieldEvent(ev wizard.Event) bool {
	switch ev.(type) {
	case wizard.SetCustomer, wizard.SelectSizeMode, wizard.SetManualSize, wizard.SetManualDimensions, wizard.SetManualLinearFeet, wizard.SetTier,
		wizard.SetCountertopMaterial, wizard.SetFlooringMaterial, wizard.SetAddOns, wizard.SelectAppointmentSlot:
		return true
	}
	return false
}

type noopMetrics struct{}

func (noopMetrics) Transition(string, string)          {}
func (noopMetrics) ValidationFailure(string)           {}
func (noopMetrics) Finalization(string)                {}
func (noopMetrics) ObserveStore(string, time.Duration) {}
