package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/domain/wizard"
	"kiosk_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const finalizeLockPrefix = "kiosk:finalize:"

// NewReferenceCode returns a booking reference such as KQ-LZ3K9F0A-1F2E3D.
// The middle part is the base-36 unix millisecond time.
func NewReferenceCode(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return strings.ToUpper(fmt.Sprintf("KQ-%s-%s", strconv.FormatInt(now.UnixMilli(), 36), random))
}

// finalize books the draft of a session sitting on the payment step.
//
// The reference code and the provider payment id are kept on the session as
// soon as they exist, so a retry after any failure re-uses both instead of
// minting a second reference or charging twice.
func (u *KioskUseCase) finalize(ctx context.Context, s *kioskSession, cur wizard.State) (SessionView, error) {
	u.log.Info(ctx, fmt.Sprintf("[kiosk][finalize] start draft_id=%s pending_reference=%s", cur.Draft.ID, cur.PendingReference))
	st := cur
	if st.Draft.ID == "" {
		saved, err := u.save(ctx, s, st)
		if err != nil {
			return u.finalizeFailed(ctx, s, "persistence_failed", err)
		}
		st = saved
		s.commit(st, u.now())
	}
	ctx = u.log.WithDraftID(ctx, st.Draft.ID)

	if u.lock != nil {
		key := finalizeLockPrefix + st.Draft.ID
		ok, err := u.lock.TryLock(ctx, key)
		if err != nil {
			return u.finalizeFailed(ctx, s, "lock_failed", fmt.Errorf("%w: %w", ErrFinalization, err))
		}
		if !ok {
			u.metrics.Finalization("in_flight")
			u.log.Warn(ctx, "[kiosk][finalize] lock held elsewhere")
			return u.view(s), ErrTransitionInFlight
		}
		defer func() {
			if err := u.lock.Unlock(context.WithoutCancel(ctx), key); err != nil {
				u.log.Error(ctx, "[kiosk][finalize] unlock failed", err)
			}
		}()
	}

	st, err := s.machine.Apply(st, wizard.ReserveReference{Code: u.newReference(u.now())})
	if err != nil {
		return u.finalizeFailed(ctx, s, "invalid_state", fmt.Errorf("%w: %w", ErrFinalization, err))
	}
	s.commit(st, u.now())
	ref := st.PendingReference

	if st.PendingPaymentID == "" {
		paymentID, err := u.chargeDeposit(ctx, st.Draft, ref)
		if err != nil {
			return u.finalizeFailed(ctx, s, "payment_failed", err)
		}
		st, err = s.machine.Apply(st, wizard.RecordDeposit{PaymentID: paymentID})
		if err != nil {
			return u.finalizeFailed(ctx, s, "invalid_state", fmt.Errorf("%w: %w", ErrFinalization, err))
		}
		s.commit(st, u.now())
	} else {
		u.log.Info(ctx, fmt.Sprintf("[kiosk][finalize] reusing deposit payment_id=%s", st.PendingPaymentID))
	}

	fin := entities.Finalization{ReferenceCode: ref, PaymentID: st.PendingPaymentID, PaidAt: u.now()}
	start := time.Now()
	err = u.store.Update(ctx, st.Draft.ID, fin.Patch())
	u.metrics.ObserveStore("finalize", time.Since(start))
	if err != nil {
		if errors.Is(err, interfaces.ErrDraftAlreadyBooked) {
			u.metrics.Finalization("already_booked")
			u.notify(ctx, s, entities.NotificationError, "This quote was already booked.")
			u.log.Warn(ctx, fmt.Sprintf("[kiosk][finalize] draft booked under another reference reference=%s", ref))
			return u.view(s), ErrAlreadyBooked
		}
		return u.finalizeFailed(ctx, s, "persistence_failed", fmt.Errorf("%w: %w", ErrFinalization, err))
	}

	next, err := s.machine.Apply(st, wizard.Finalized{Finalization: fin})
	if err != nil {
		return u.finalizeFailed(ctx, s, "invalid_state", fmt.Errorf("%w: %w", ErrFinalization, err))
	}
	s.commit(next, u.now())
	u.metrics.Transition(string(wizard.StepPayment), string(next.Step))
	u.metrics.Finalization("booked")
	u.notify(ctx, s, entities.NotificationSuccess, fmt.Sprintf("Appointment booked. Your reference is %s.", ref))
	u.log.Info(ctx, fmt.Sprintf("[kiosk][finalize] success reference=%s payment_id=%s", ref, fin.PaymentID))
	return u.view(s), nil
}

func (u *KioskUseCase) finalizeFailed(ctx context.Context, s *kioskSession, outcome string, err error) (SessionView, error) {
	u.metrics.Finalization(outcome)
	u.notify(ctx, s, entities.NotificationError, "We couldn't complete your booking. Please try again.")
	u.log.Error(ctx, fmt.Sprintf("[kiosk][finalize] failed outcome=%s", outcome), err)
	return u.view(s), err
}

// chargeDeposit charges the deposit credit and returns the provider payment id.
func (u *KioskUseCase) chargeDeposit(ctx context.Context, d entities.QuoteDraft, reference string) (string, error) {
	if u.gateway == nil {
		return "", fmt.Errorf("%w: payment gateway not configured", ErrFinalization)
	}
	payload, err := u.depositPayload(d, reference)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFinalization, err)
	}

	u.log.Info(ctx, fmt.Sprintf("[kiosk][finalize] calling payment gateway reference=%s amount=%d", reference, d.Estimate.DepositCredit))
	paymentID, status, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFinalization, err)
	}
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
	default:
		return "", fmt.Errorf("%w: %w (status=%s)", ErrFinalization, ErrDepositDeclined, status)
	}
	if strings.TrimSpace(paymentID) == "" {
		return "", fmt.Errorf("%w: payment gateway returned no payment id", ErrFinalization)
	}
	u.log.Info(ctx, fmt.Sprintf("[kiosk][finalize] deposit approved provider_payment_id=%s", paymentID))
	return paymentID, nil
}

func (u *KioskUseCase) depositPayload(d entities.QuoteDraft, reference string) (json.RawMessage, error) {
	email := strings.TrimSpace(d.Customer.Email)
	if email == "" {
		email = strings.TrimSpace(u.deposit.FallbackPayerEmail)
	}
	payer := map[string]any{"type": "customer"}
	if email != "" {
		payer["email"] = email
	}
	if name := strings.TrimSpace(d.Customer.Name); name != "" {
		payer["first_name"] = name
	}

	req := map[string]any{
		"transaction_amount": float64(d.Estimate.DepositCredit),
		"description":        u.deposit.Description,
		"external_reference": reference,
		"payer":              payer,
		"metadata": map[string]any{
			"draft_id":         d.ID,
			"appointment_slot": d.AppointmentSlot,
		},
	}
	if method := strings.TrimSpace(u.deposit.PaymentMethodID); method != "" {
		req["payment_method_id"] = method
	}
	return json.Marshal(req)
}
