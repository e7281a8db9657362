package repository

import (
	"context"
	"sync"
	"time"

	"kiosk_quote/internal/domain/entities"
	"kiosk_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Store operations that can be made to fail with FailNext.
const (
	OpUpsert = "upsert"
	OpUpdate = "update"
	OpGet    = "get"
)

// QuoteDraftMemoryRepository is an in-process quote store with the same
// conditional semantics as the DynamoDB repository. It backs local runs and
// tests.
type QuoteDraftMemoryRepository struct {
	mu     sync.Mutex
	drafts map[string]entities.QuoteDraft
	faults map[string][]error
	now    func() time.Time
}

var _ interfaces.IQuoteStore = (*QuoteDraftMemoryRepository)(nil)

func NewQuoteDraftMemoryRepository() *QuoteDraftMemoryRepository {
	return &QuoteDraftMemoryRepository{
		drafts: map[string]entities.QuoteDraft{},
		faults: map[string][]error{},
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// FailNext makes the next call of op return err. Calls queue up.
func (r *QuoteDraftMemoryRepository) FailNext(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faults[op] = append(r.faults[op], err)
}

func (r *QuoteDraftMemoryRepository) fault(op string) error {
	queue := r.faults[op]
	if len(queue) == 0 {
		return nil
	}
	r.faults[op] = queue[1:]
	return queue[0]
}

func (r *QuoteDraftMemoryRepository) Upsert(_ context.Context, d entities.QuoteDraft) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fault(OpUpsert); err != nil {
		return "", err
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	} else if cur, ok := r.drafts[d.ID]; ok && cur.IsBooked() {
		return "", interfaces.ErrDraftAlreadyBooked
	}
	if d.Status == "" {
		d.Status = entities.QuoteStatusDraft
	}
	r.drafts[d.ID] = d
	return d.ID, nil
}

func (r *QuoteDraftMemoryRepository) Update(_ context.Context, id string, patch entities.QuoteDraftPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fault(OpUpdate); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}
	cur, ok := r.drafts[id]
	if !ok || cur.Status != entities.QuoteStatusDraft {
		return rejectedPatchError(cur, patch)
	}
	patch.Apply(&cur)
	cur.UpdatedAt = r.now()
	r.drafts[id] = cur
	return nil
}

func (r *QuoteDraftMemoryRepository) GetByID(_ context.Context, id string) (entities.QuoteDraft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.fault(OpGet); err != nil {
		return entities.QuoteDraft{}, err
	}
	return r.drafts[id], nil
}

// Len reports how many drafts are stored.
func (r *QuoteDraftMemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.drafts)
}
