// Package memory is a process-local storage driver used for development and
// tests. A transaction holds one store-wide lock from Begin until Commit or
// Rollback, which gives the same serialization the Postgres driver gets from
// advisory and row locks.
package memory

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
)

// Store owns all in-memory tables.
type Store struct {
	txMu sync.Mutex   // held for the lifetime of a transaction
	mu   sync.RWMutex // guards the maps below

	intents     map[string]*intentRow
	intentOrder []string
	events      map[eventKey]struct{}
	inspections map[string]*inspectionRow
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		intents:     make(map[string]*intentRow),
		events:      make(map[eventKey]struct{}),
		inspections: make(map[string]*inspectionRow),
	}
}

// Transactor implements ports.DBTransactor over a Store.
type Transactor struct {
	store *Store
}

// NewTransactor creates a transactor bound to store.
func NewTransactor(store *Store) *Transactor {
	return &Transactor{store: store}
}

// Begin blocks until no other transaction is open.
func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	locked := make(chan struct{})
	go func() {
		t.store.txMu.Lock()
		close(locked)
	}()

	select {
	case <-locked:
		return &memTx{store: t.store}, nil
	case <-ctx.Done():
		// Hand the lock back once the waiter eventually gets it.
		go func() {
			<-locked
			t.store.txMu.Unlock()
		}()
		return nil, ctx.Err()
	}
}

// memTx satisfies pgx.Tx for the methods the repositories use. Writes are
// applied immediately and undone in reverse order on Rollback.
type memTx struct {
	pgx.Tx
	store *Store
	once  sync.Once
	undo  []func()
}

func (t *memTx) Commit(_ context.Context) error {
	t.finish(false)
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	t.finish(true)
	return nil
}

func (t *memTx) finish(rollback bool) {
	t.once.Do(func() {
		if rollback {
			t.store.mu.Lock()
			for i := len(t.undo) - 1; i >= 0; i-- {
				t.undo[i]()
			}
			t.store.mu.Unlock()
		}
		t.undo = nil
		t.store.txMu.Unlock()
	})
}

// onRollback registers fn when tx is a memory transaction. Caller holds store.mu.
func onRollback(tx pgx.Tx, fn func()) {
	if mt, ok := tx.(*memTx); ok {
		mt.undo = append(mt.undo, fn)
	}
}
