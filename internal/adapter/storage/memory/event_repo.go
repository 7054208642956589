package memory

import (
	"context"

	"inspection-billing/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

type eventKey struct {
	provider domain.Provider
	eventID  string
}

// EventRepo implements ports.PaymentEventRepository.
type EventRepo struct {
	store *Store
	log   []domain.PaymentEvent
}

// NewEventRepo creates an event log over store.
func NewEventRepo(store *Store) *EventRepo {
	return &EventRepo{store: store}
}

func (r *EventRepo) Exists(_ context.Context, provider domain.Provider, eventID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	_, ok := r.store.events[eventKey{provider, eventID}]
	return ok, nil
}

func (r *EventRepo) Append(_ context.Context, tx pgx.Tx, event *domain.PaymentEvent) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := eventKey{event.Provider, event.ProviderEventID}
	if _, ok := s.events[key]; ok {
		return false, nil
	}
	s.events[key] = struct{}{}
	r.log = append(r.log, *event)

	onRollback(tx, func() {
		delete(s.events, key)
		r.log = r.log[:len(r.log)-1]
	})
	return true, nil
}

// Events returns a copy of every recorded event in arrival order.
func (r *EventRepo) Events() []domain.PaymentEvent {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.PaymentEvent(nil), r.log...)
}
