package interfaces

import (
	"context"
	"errors"

	"kiosk_quote/internal/domain/entities"
)

var (
	ErrDraftNotFound      = errors.New("quote draft not found")
	ErrDraftAlreadyBooked = errors.New("quote draft already booked")
)

// IQuoteStore persists kiosk quote drafts.
//
// Contract:
//   - Upsert creates the draft when ID is empty (the store assigns the id) and
//     replaces it otherwise. Booked drafts are never overwritten.
//   - Update applies a partial patch keyed by id. A draft that is already booked
//     rejects the patch with ErrDraftAlreadyBooked, unless the patch books it under
//     the same reference code it already carries (a retried finalization), which
//     succeeds without changes.
//   - GetByID returns the zero draft when nothing is stored under id.
type IQuoteStore interface {
	Upsert(ctx context.Context, d entities.QuoteDraft) (string, error)
	Update(ctx context.Context, id string, patch entities.QuoteDraftPatch) error
	GetByID(ctx context.Context, id string) (entities.QuoteDraft, error)
}
