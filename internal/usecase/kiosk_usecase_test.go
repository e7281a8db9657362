package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/domain/pricing"
	"kiosk_quote/internal/domain/wizard"
	mock_interfaces "kiosk_quote/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

var validCustomer = entities.Customer{Name: "Ada Lovelace", Phone: "(555) 010-2030", Email: "ada@example.com"}

func newTestUseCase(store *mock_interfaces.MockIQuoteStore, opts ...KioskOption) *KioskUseCase {
	base := []KioskOption{WithClock(func() time.Time { return testNow })}
	return NewKioskUseCase(store, nil, nil, append(base, opts...)...)
}

func startSession(t *testing.T, uc *KioskUseCase) string {
	t.Helper()
	v, err := uc.StartSession(context.Background(), "terminal-1")
	require.NoError(t, err)
	return v.SessionID
}

// driveTo fills each step with valid input and continues until target.
func driveTo(t *testing.T, uc *KioskUseCase, sessionID string, target wizard.Step) SessionView {
	t.Helper()
	ctx := context.Background()
	for {
		v, err := uc.GetSession(ctx, sessionID)
		require.NoError(t, err)
		if v.Step == target {
			return v
		}
		switch v.Step {
		case wizard.StepCustomer:
			_, err = uc.ApplyFields(ctx, sessionID, wizard.SetCustomer{Customer: validCustomer})
			require.NoError(t, err)
		case wizard.StepAppointment:
			_, err = uc.ApplyFields(ctx, sessionID, wizard.SelectAppointmentSlot{Slot: uc.Catalog().AppointmentSlots[0]})
			require.NoError(t, err)
		}
		_, err = uc.Continue(ctx, sessionID)
		require.NoError(t, err)
	}
}

func TestKioskUseCase_StartSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIQuoteStore(ctrl)
	uc := newTestUseCase(store)

	v, err := uc.StartSession(context.Background(), " terminal-7 ")
	require.NoError(t, err)
	assert.NotEmpty(t, v.SessionID)
	assert.Equal(t, "terminal-7", v.TerminalID)
	assert.Equal(t, wizard.StepWelcome, v.Step)
	assert.Empty(t, v.Draft.ID)
	assert.Equal(t, entities.PresetMedium, v.Draft.PresetID)
	assert.True(t, v.Breakdown.Total.IsPositive())
}

func TestKioskUseCase_UnknownSession(t *testing.T) {
	uc := NewKioskUseCase(nil, nil, nil)

	_, err := uc.GetSession(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidSessionID)

	_, err = uc.Continue(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestKioskUseCase_ContinueFromWelcomeAttachesUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIQuoteStore(ctrl)
	users := mock_interfaces.NewMockICurrentUserLookup(ctrl)
	users.EXPECT().CurrentUserID(gomock.Any()).Return("operator-9", true)
	uc := newTestUseCase(store, WithCurrentUserLookup(users))
	id := startSession(t, uc)

	v, err := uc.Continue(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepCustomer, v.Step)
	assert.Equal(t, "operator-9", v.Draft.UserID)
	assert.Empty(t, v.Draft.ID)
}

func TestKioskUseCase_CustomerGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIQuoteStore(ctrl)
	metrics := mock_interfaces.NewMockIKioskMetrics(ctrl)
	metrics.EXPECT().Transition(gomock.Any(), gomock.Any()).AnyTimes()
	metrics.EXPECT().ValidationFailure(string(wizard.StepCustomer)).Times(1)
	uc := newTestUseCase(store, WithMetrics(metrics))
	id := startSession(t, uc)
	driveTo(t, uc, id, wizard.StepCustomer)

	v, err := uc.Continue(context.Background(), id)
	require.ErrorIs(t, err, wizard.ErrValidation)
	assert.Equal(t, wizard.StepCustomer, v.Step)
	require.Len(t, v.Notifications, 1)
	assert.Equal(t, entities.NotificationError, v.Notifications[0].Kind)

	again, err := uc.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Empty(t, again.Notifications, "notifications are drained once shown")
}

func TestKioskUseCase_ContinuePersistsAndKeepsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIQuoteStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.QuoteDraft) (string, error) {
			assert.Empty(t, d.ID)
			assert.Equal(t, entities.QuoteStatusDraft, d.Status)
			assert.Equal(t, validCustomer, d.Customer)
			assert.Equal(t, testNow, d.UpdatedAt)
			return "draft-1", nil
		}),
		store.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.QuoteDraft) (string, error) {
			assert.Equal(t, "draft-1", d.ID)
			return "draft-1", nil
		}),
	)
	uc := newTestUseCase(store)
	id := startSession(t, uc)

	v := driveTo(t, uc, id, wizard.StepMaterials)
	assert.Equal(t, "draft-1", v.Draft.ID)
	assert.Equal(t, entities.QuoteStatusDraft, v.Draft.Status)
}

func TestKioskUseCase_PersistenceFailureLeavesStateUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIQuoteStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("", errors.New("dynamodb unavailable")),
		store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("draft-2", nil),
	)
	uc := newTestUseCase(store)
	id := startSession(t, uc)
	driveTo(t, uc, id, wizard.StepCustomer)
	_, err := uc.ApplyFields(context.Background(), id, wizard.SetCustomer{Customer: validCustomer})
	require.NoError(t, err)

	v, err := uc.Continue(context.Background(), id)
	require.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, wizard.StepCustomer, v.Step)
	assert.Empty(t, v.Draft.ID)
	require.NotEmpty(t, v.Notifications)
	assert.Equal(t, entities.NotificationError, v.Notifications[0].Kind)

	v, err = uc.Continue(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepKitchen, v.Step)
	assert.Equal(t, "draft-2", v.Draft.ID)
}

func TestKioskUseCase_TransitionInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIQuoteStore(ctrl)
	entered := make(chan struct{})
	unblock := make(chan struct{})
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, entities.QuoteDraft) (string, error) {
		close(entered)
		<-unblock
		return "draft-1", nil
	})
	uc := newTestUseCase(store)
	id := startSession(t, uc)
	driveTo(t, uc, id, wizard.StepCustomer)
	_, err := uc.ApplyFields(context.Background(), id, wizard.SetCustomer{Customer: validCustomer})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Continue(context.Background(), id)
		done <- err
	}()
	<-entered

	_, err = uc.Continue(context.Background(), id)
	assert.ErrorIs(t, err, ErrTransitionInFlight)
	_, err = uc.ApplyFields(context.Background(), id, wizard.SetCustomer{Customer: validCustomer})
	assert.ErrorIs(t, err, ErrTransitionInFlight)

	v, err := uc.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepCustomer, v.Step)

	close(unblock)
	require.NoError(t, <-done)
	v, err = uc.GetSession(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepKitchen, v.Step)
}

func TestKioskUseCase_ApplyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIQuoteStore(ctrl)
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("draft-1", nil).AnyTimes()
	uc := newTestUseCase(store)
	id := startSession(t, uc)
	before := driveTo(t, uc, id, wizard.StepMaterials)

	t.Run("rejects structural events", func(t *testing.T) {
		_, err := uc.ApplyFields(context.Background(), id, wizard.Continue{})
		assert.ErrorIs(t, err, ErrNotAFieldEvent)
	})

	t.Run("all or nothing", func(t *testing.T) {
		v, err := uc.ApplyFields(context.Background(), id,
			wizard.SetTier{Tier: entities.TierBest},
			wizard.SetFlooringMaterial{Material: "CARPET"},
		)
		require.ErrorIs(t, err, wizard.ErrValidation)
		assert.Equal(t, before.Draft.Tier, v.Draft.Tier)
		assert.Equal(t, before.Draft.Estimate, v.Draft.Estimate)
	})

	t.Run("reprices", func(t *testing.T) {
		v, err := uc.ApplyFields(context.Background(), id,
			wizard.SetTier{Tier: entities.TierBetter},
			wizard.SetAddOns{AddOns: entities.AddOns{PlumbingMoveCount: 1, IncludeDemo: true}},
		)
		require.NoError(t, err)
		assert.Equal(t, int64(16860), v.Draft.Estimate.Subtotal)
		assert.Equal(t, int64(15520), v.Draft.Estimate.Low)
		assert.Equal(t, int64(18210), v.Draft.Estimate.High)
	})
}

func TestKioskUseCase_BackDoesNotPersist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIQuoteStore(ctrl)
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("draft-1", nil).Times(2)
	uc := newTestUseCase(store)
	id := startSession(t, uc)
	driveTo(t, uc, id, wizard.StepMaterials)

	v, err := uc.Back(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepKitchen, v.Step)
	assert.Equal(t, "draft-1", v.Draft.ID)
}

func TestKioskUseCase_ResetOnlyFromConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIQuoteStore(ctrl)
	uc := newTestUseCase(store)
	id := startSession(t, uc)

	_, err := uc.Reset(context.Background(), id)
	assert.ErrorIs(t, err, wizard.ErrInvalidTransition)
}

func TestKioskUseCase_EvictsIdleSessions(t *testing.T) {
	now := testNow
	uc := NewKioskUseCase(nil, nil, nil, WithSessionTTL(time.Hour), WithClock(func() time.Time { return now }))
	stale := startSession(t, uc)
	fresh := startSession(t, uc)

	now = now.Add(50 * time.Minute)
	_, err := uc.GetSession(context.Background(), fresh)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	startSession(t, uc)

	_, err = uc.GetSession(context.Background(), stale)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = uc.GetSession(context.Background(), fresh)
	assert.NoError(t, err)
}

func TestKioskUseCase_QuotePDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("renderer not configured", func(t *testing.T) {
		uc := NewKioskUseCase(nil, nil, nil)
		id := startSession(t, uc)
		_, err := uc.QuotePDF(context.Background(), id)
		assert.ErrorIs(t, err, ErrPDFUnavailable)
	})

	t.Run("renders current draft", func(t *testing.T) {
		renderer := mock_interfaces.NewMockIQuotePDFRenderer(ctrl)
		uc := NewKioskUseCase(nil, nil, nil, WithPDFRenderer(renderer))
		id := startSession(t, uc)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(func(d entities.QuoteDraft, _ pricing.Breakdown) ([]byte, error) {
			assert.Equal(t, entities.PresetMedium, d.PresetID)
			return []byte("%PDF-1.3"), nil
		})

		b, err := uc.QuotePDF(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.3"), b)
	})
}

func TestKioskUseCase_Catalog(t *testing.T) {
	uc := NewKioskUseCase(nil, nil, nil, WithAppointmentSlots([]string{"Friday 10:00 AM"}))
	c := uc.Catalog()
	assert.Len(t, c.Presets, 3)
	assert.Equal(t, []entities.Tier{entities.TierGood, entities.TierBetter, entities.TierBest}, c.Tiers)
	assert.Equal(t, []string{"Friday 10:00 AM"}, c.AppointmentSlots)
	assert.Equal(t, int64(500), c.DepositCredit)
}
