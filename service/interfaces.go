package service

import (
	"context"
	"time"

	"mingle/models"
)

// Persister mirrors the in-memory collections to durable storage. Each save
// rewrites one whole collection; Load reconstructs everything at startup.
type Persister interface {
	// Load reconstructs every collection from durable storage
	Load(ctx context.Context) (*models.Snapshot, error)

	// SaveBalances upserts every balance record
	SaveBalances(ctx context.Context, balances map[string]int64) error

	// SaveDailyCooldowns upserts every daily-claim record
	SaveDailyCooldowns(ctx context.Context, cooldowns map[string]time.Time) error

	// SaveDivorceCooldowns upserts every divorce-cooldown record
	SaveDivorceCooldowns(ctx context.Context, cooldowns map[string]time.Time) error

	// SaveInventory rewrites the gift inventory document
	SaveInventory(ctx context.Context, inventory map[string][]models.Gift) error

	// SaveShips rewrites the ships document
	SaveShips(ctx context.Context, ships map[string]*models.Ship) error

	// SaveMarriages rewrites the marriages document
	SaveMarriages(ctx context.Context, marriages map[string]*models.Marriage) error

	// SaveCalls rewrites the calls document
	SaveCalls(ctx context.Context, calls map[string]*models.Call) error

	// SaveParticipants rewrites the call rosters document
	SaveParticipants(ctx context.Context, participants map[string][]string) error
}

// randSource is the subset of math/rand the games depend on. Tests inject a
// scripted source to pin outcomes.
type randSource interface {
	Intn(n int) int
}
