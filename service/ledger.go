package service

import (
	"context"
	"sync"

	"mingle/events"
	"mingle/models"

	log "github.com/sirupsen/logrus"
)

// Ledger owns every shared collection behind one process-wide mutex. Handler
// code reaches state only through the services built on top of it; nothing
// hands out references to the live maps.
//
// Saves run synchronously while the lock is held, serializing the
// full-collection rewrites. A failed save is logged and swallowed: the
// in-memory mutation stands and the operation still reports success, at the
// documented risk of losing that delta on a crash before the next good save.
type Ledger struct {
	mu       sync.Mutex
	data     *models.Snapshot
	store    Persister
	eventBus *events.Bus
}

// NewLedger loads all collections from the store and wraps them in a ledger.
func NewLedger(ctx context.Context, store Persister, eventBus *events.Bus) (*Ledger, error) {
	snap, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		data:     snap,
		store:    store,
		eventBus: eventBus,
	}

	log.WithFields(log.Fields{
		"balances":    len(snap.Balances),
		"ships":       len(snap.Ships),
		"marriages":   len(snap.Marriages),
		"calls":       len(snap.Calls),
		"inventories": len(snap.Inventory),
	}).Info("Ledger loaded")

	return l, nil
}

// emit publishes an event on the shared bus, if one is attached.
func (l *Ledger) emit(ctx context.Context, event events.Event) {
	if l.eventBus != nil {
		l.eventBus.Emit(ctx, event)
	}
}

// The save helpers write synchronously; a failure is logged but never
// surfaced to the caller.

func (l *Ledger) saveBalances(ctx context.Context) {
	if err := l.store.SaveBalances(ctx, l.data.Balances); err != nil {
		log.WithError(err).Error("Failed to persist balances; in-memory state remains authoritative")
	}
}

func (l *Ledger) saveDailyCooldowns(ctx context.Context) {
	if err := l.store.SaveDailyCooldowns(ctx, l.data.DailyCooldowns); err != nil {
		log.WithError(err).Error("Failed to persist daily cooldowns; in-memory state remains authoritative")
	}
}

func (l *Ledger) saveDivorceCooldowns(ctx context.Context) {
	if err := l.store.SaveDivorceCooldowns(ctx, l.data.DivorceCooldowns); err != nil {
		log.WithError(err).Error("Failed to persist divorce cooldowns; in-memory state remains authoritative")
	}
}

func (l *Ledger) saveInventory(ctx context.Context) {
	if err := l.store.SaveInventory(ctx, l.data.Inventory); err != nil {
		log.WithError(err).Error("Failed to persist inventory; in-memory state remains authoritative")
	}
}

func (l *Ledger) saveShips(ctx context.Context) {
	if err := l.store.SaveShips(ctx, l.data.Ships); err != nil {
		log.WithError(err).Error("Failed to persist ships; in-memory state remains authoritative")
	}
}

func (l *Ledger) saveMarriages(ctx context.Context) {
	if err := l.store.SaveMarriages(ctx, l.data.Marriages); err != nil {
		log.WithError(err).Error("Failed to persist marriages; in-memory state remains authoritative")
	}
}

func (l *Ledger) saveCalls(ctx context.Context) {
	if err := l.store.SaveCalls(ctx, l.data.Calls); err != nil {
		log.WithError(err).Error("Failed to persist calls; in-memory state remains authoritative")
	}
}

func (l *Ledger) saveParticipants(ctx context.Context) {
	if err := l.store.SaveParticipants(ctx, l.data.Participants); err != nil {
		log.WithError(err).Error("Failed to persist call rosters; in-memory state remains authoritative")
	}
}
