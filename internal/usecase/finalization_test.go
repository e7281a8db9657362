package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/domain/wizard"
	"kiosk_quote/internal/usecase/interfaces"
	mock_interfaces "kiosk_quote/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type finalizeFixture struct {
	store   *mock_interfaces.MockIQuoteStore
	gateway *mock_interfaces.MockIPaymentGateway
	lock    *mock_interfaces.MockIFinalizationLock
	uc      *KioskUseCase
	id      string
	minted  int
}

// newFinalizeFixture returns a session parked on the payment step of draft-1.
func newFinalizeFixture(t *testing.T) *finalizeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &finalizeFixture{
		store:   mock_interfaces.NewMockIQuoteStore(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
		lock:    mock_interfaces.NewMockIFinalizationLock(ctrl),
	}
	f.store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return("draft-1", nil).Times(5)
	f.uc = NewKioskUseCase(f.store, f.gateway, f.lock,
		WithClock(func() time.Time { return testNow }),
		WithDepositSettings(DepositSettings{PaymentMethodID: "pix"}),
		WithReferenceGenerator(func(time.Time) string {
			f.minted++
			return "KQ-TEST-" + string(rune('0'+f.minted))
		}),
	)
	f.id = startSession(t, f.uc)
	driveTo(t, f.uc, f.id, wizard.StepPayment)
	return f
}

func (f *finalizeFixture) expectLock(times int) {
	f.lock.EXPECT().TryLock(gomock.Any(), "kiosk:finalize:draft-1").Return(true, nil).Times(times)
	f.lock.EXPECT().Unlock(gomock.Any(), "kiosk:finalize:draft-1").Return(nil).Times(times)
}

func TestFinalize_BooksDraft(t *testing.T) {
	f := newFinalizeFixture(t)
	f.expectLock(1)
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
		var req map[string]any
		require.NoError(t, json.Unmarshal(payload, &req))
		assert.Equal(t, float64(500), req["transaction_amount"])
		assert.Equal(t, "KQ-TEST-1", req["external_reference"])
		assert.Equal(t, "pix", req["payment_method_id"])
		assert.Equal(t, validCustomer.Email, req["payer"].(map[string]any)["email"])
		return "pay-1", "approved", json.RawMessage(`{}`), nil
	})
	f.store.EXPECT().Update(gomock.Any(), "draft-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, p entities.QuoteDraftPatch) error {
		require.NotNil(t, p.Status)
		assert.Equal(t, entities.QuoteStatusAppointmentBooked, *p.Status)
		assert.True(t, *p.DepositPaid)
		assert.Equal(t, "KQ-TEST-1", *p.ReferenceCode)
		assert.Equal(t, "pay-1", *p.PaymentID)
		assert.Equal(t, testNow, *p.PaidAt)
		assert.Nil(t, p.Customer)
		return nil
	})

	v, err := f.uc.Continue(context.Background(), f.id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepConfirm, v.Step)
	assert.Equal(t, entities.QuoteStatusAppointmentBooked, v.Draft.Status)
	assert.True(t, v.Draft.DepositPaid)
	assert.Equal(t, "KQ-TEST-1", v.Draft.ReferenceCode)
	require.Len(t, v.Notifications, 1)
	assert.Equal(t, entities.NotificationSuccess, v.Notifications[0].Kind)
	assert.Contains(t, v.Notifications[0].Message, "KQ-TEST-1")

	t.Run("second finalization is refused", func(t *testing.T) {
		_, err := f.uc.Continue(context.Background(), f.id)
		assert.ErrorIs(t, err, ErrAlreadyBooked)
	})

	t.Run("reset starts a clean draft", func(t *testing.T) {
		v, err := f.uc.Reset(context.Background(), f.id)
		require.NoError(t, err)
		assert.Equal(t, wizard.StepWelcome, v.Step)
		assert.Empty(t, v.Draft.ID)
		assert.Empty(t, v.Draft.ReferenceCode)
		assert.Equal(t, entities.QuoteStatusDraft, v.Draft.Status)
	})
}

func TestFinalize_RetryReusesReferenceAndPayment(t *testing.T) {
	f := newFinalizeFixture(t)
	f.expectLock(2)
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", nil, nil).Times(1)
	var refs []string
	gomock.InOrder(
		f.store.EXPECT().Update(gomock.Any(), "draft-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, p entities.QuoteDraftPatch) error {
			refs = append(refs, *p.ReferenceCode)
			return errors.New("throughput exceeded")
		}),
		f.store.EXPECT().Update(gomock.Any(), "draft-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, p entities.QuoteDraftPatch) error {
			refs = append(refs, *p.ReferenceCode)
			assert.Equal(t, "pay-1", *p.PaymentID)
			return nil
		}),
	)

	v, err := f.uc.Continue(context.Background(), f.id)
	require.ErrorIs(t, err, ErrFinalization)
	assert.Equal(t, wizard.StepPayment, v.Step)
	assert.Equal(t, entities.QuoteStatusDraft, v.Draft.Status)
	assert.False(t, v.Draft.DepositPaid)
	assert.Empty(t, v.Draft.ReferenceCode)

	v, err = f.uc.Continue(context.Background(), f.id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepConfirm, v.Step)
	assert.Equal(t, []string{"KQ-TEST-1", "KQ-TEST-1"}, refs)
	assert.Equal(t, "KQ-TEST-1", v.Draft.ReferenceCode)
}

func TestFinalize_DeclinedDepositIsRetried(t *testing.T) {
	f := newFinalizeFixture(t)
	f.expectLock(2)
	gomock.InOrder(
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "rejected", nil, nil),
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-2", "approved", nil, nil),
	)
	f.store.EXPECT().Update(gomock.Any(), "draft-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, p entities.QuoteDraftPatch) error {
		assert.Equal(t, "pay-2", *p.PaymentID)
		assert.Equal(t, "KQ-TEST-1", *p.ReferenceCode)
		return nil
	})

	v, err := f.uc.Continue(context.Background(), f.id)
	require.ErrorIs(t, err, ErrDepositDeclined)
	assert.Equal(t, wizard.StepPayment, v.Step)

	v, err = f.uc.Continue(context.Background(), f.id)
	require.NoError(t, err)
	assert.Equal(t, wizard.StepConfirm, v.Step)
}

func TestFinalize_BookedElsewhere(t *testing.T) {
	f := newFinalizeFixture(t)
	f.expectLock(1)
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", nil, nil)
	f.store.EXPECT().Update(gomock.Any(), "draft-1", gomock.Any()).Return(interfaces.ErrDraftAlreadyBooked)

	v, err := f.uc.Continue(context.Background(), f.id)
	require.ErrorIs(t, err, ErrAlreadyBooked)
	assert.Equal(t, wizard.StepPayment, v.Step)
}

func TestFinalize_LockHeld(t *testing.T) {
	f := newFinalizeFixture(t)
	f.lock.EXPECT().TryLock(gomock.Any(), "kiosk:finalize:draft-1").Return(false, nil)

	v, err := f.uc.Continue(context.Background(), f.id)
	require.ErrorIs(t, err, ErrTransitionInFlight)
	assert.Equal(t, wizard.StepPayment, v.Step)
	assert.Equal(t, 0, f.minted)
}

func TestFinalize_LockError(t *testing.T) {
	f := newFinalizeFixture(t)
	f.lock.EXPECT().TryLock(gomock.Any(), gomock.Any()).Return(false, errors.New("redis: connection refused"))

	_, err := f.uc.Continue(context.Background(), f.id)
	require.ErrorIs(t, err, ErrFinalization)
}

func TestFinalize_GatewayError(t *testing.T) {
	f := newFinalizeFixture(t)
	f.expectLock(1)
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"status":400,"error":"bad_request"}`))

	v, err := f.uc.Continue(context.Background(), f.id)
	require.ErrorIs(t, err, ErrFinalization)
	assert.Equal(t, wizard.StepPayment, v.Step)
	require.NotEmpty(t, v.Notifications)
	assert.Equal(t, entities.NotificationError, v.Notifications[0].Kind)
}

func TestNewReferenceCode(t *testing.T) {
	at := time.UnixMilli(1767225600000)
	a := NewReferenceCode(at)
	b := NewReferenceCode(at)

	assert.Regexp(t, regexp.MustCompile(`^KQ-[0-9A-Z]+-[0-9A-F]{6}$`), a)
	assert.Equal(t, a[:len(a)-6], b[:len(b)-6])
	assert.Contains(t, a, "-MJUOHS00-")
}
