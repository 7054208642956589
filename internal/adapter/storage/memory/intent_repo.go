package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"inspection-billing/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type intentRow struct {
	intent domain.PaymentIntent
	seq    int
}

// IntentRepo implements ports.PaymentIntentRepository.
type IntentRepo struct {
	store *Store
}

// NewIntentRepo creates an intent repository over store.
func NewIntentRepo(store *Store) *IntentRepo {
	return &IntentRepo{store: store}
}

func (r *IntentRepo) Create(_ context.Context, tx pgx.Tx, intent *domain.PaymentIntent) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := intent.ID.String()
	if _, ok := s.intents[key]; ok {
		return fmt.Errorf("duplicate intent id %s", key)
	}
	s.intents[key] = &intentRow{intent: clone(intent), seq: len(s.intentOrder)}
	s.intentOrder = append(s.intentOrder, key)

	onRollback(tx, func() {
		delete(s.intents, key)
		s.intentOrder = s.intentOrder[:len(s.intentOrder)-1]
	})
	return nil
}

func (r *IntentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.PaymentIntent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.get(id), nil
}

func (r *IntentRepo) GetByIDForUpdate(_ context.Context, _ pgx.Tx, id uuid.UUID) (*domain.PaymentIntent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.get(id), nil
}

func (r *IntentRepo) GetLatestByInspection(_ context.Context, inspectionID uuid.UUID) (*domain.PaymentIntent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.latest(inspectionID), nil
}

func (r *IntentRepo) GetLatestByInspectionTx(_ context.Context, _ pgx.Tx, inspectionID uuid.UUID) (*domain.PaymentIntent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.latest(inspectionID), nil
}

func (r *IntentRepo) GetByProviderChargeForUpdate(_ context.Context, _ pgx.Tx, provider domain.Provider, chargeID string) (*domain.PaymentIntent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for i := len(r.store.intentOrder) - 1; i >= 0; i-- {
		row := r.store.intents[r.store.intentOrder[i]]
		if row.intent.Provider == provider && row.intent.ChargeID() == chargeID {
			c := clone(&row.intent)
			return &c, nil
		}
	}
	return nil, nil
}

// UpdateStatus writes status, paid_at and updated_at only.
func (r *IntentRepo) UpdateStatus(_ context.Context, tx pgx.Tx, intent *domain.PaymentIntent) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.intents[intent.ID.String()]
	if !ok {
		return fmt.Errorf("intent %s not found", intent.ID)
	}
	prev := clone(&row.intent)

	row.intent.Status = intent.Status
	row.intent.PaidAt = copyTime(intent.PaidAt)
	row.intent.UpdatedAt = intent.UpdatedAt

	onRollback(tx, func() { row.intent = prev })
	return nil
}

// LockInspection is a no-op: the open transaction already excludes all others.
func (r *IntentRepo) LockInspection(_ context.Context, _ pgx.Tx, _ uuid.UUID) error {
	return nil
}

func (r *IntentRepo) ListStale(_ context.Context, olderThan time.Time, limit int) ([]domain.PaymentIntent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.PaymentIntent
	for _, key := range r.store.intentOrder {
		row := r.store.intents[key]
		if row.intent.Status == domain.PaymentStatusPending && row.intent.CreatedAt.Before(olderThan) {
			out = append(out, clone(&row.intent))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *IntentRepo) get(id uuid.UUID) *domain.PaymentIntent {
	row, ok := r.store.intents[id.String()]
	if !ok {
		return nil
	}
	c := clone(&row.intent)
	return &c
}

// latest picks the newest by created_at, breaking ties by insertion order.
func (r *IntentRepo) latest(inspectionID uuid.UUID) *domain.PaymentIntent {
	var best *intentRow
	for _, key := range r.store.intentOrder {
		row := r.store.intents[key]
		if row.intent.InspectionID != inspectionID {
			continue
		}
		if best == nil || !row.intent.CreatedAt.Before(best.intent.CreatedAt) {
			best = row
		}
	}
	if best == nil {
		return nil
	}
	c := clone(&best.intent)
	return &c
}

func clone(p *domain.PaymentIntent) domain.PaymentIntent {
	c := *p
	c.ProviderChargeID = copyString(p.ProviderChargeID)
	c.ProviderCheckoutURL = copyString(p.ProviderCheckoutURL)
	c.PaidAt = copyTime(p.PaidAt)
	return c
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
