package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingle/models"
)

func newTestRelationships(snap *models.Snapshot) *RelationshipService {
	ledger, _ := newTestLedger(snap)
	return NewRelationshipService(ledger)
}

func TestRelationshipService_Propose_DebitsImmediately(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 2500
	svc := newTestRelationships(snap)

	err := svc.Propose(context.Background(), "alice", "bob")

	require.NoError(t, err)
	assert.Equal(t, int64(500), snap.Balances["alice"])
}

func TestRelationshipService_Propose_Denials(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 1999
	svc := newTestRelationships(snap)

	err := svc.Propose(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, ErrSelfTarget)

	err = svc.Propose(context.Background(), "alice", "bob")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(1999), snap.Balances["alice"])
}

func TestRelationshipService_Propose_PairAlreadyMarried(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 10000
	snap.Marriages[models.MarriageID("alice", "bob", now)] = &models.Marriage{
		PersonA:   "alice",
		PersonB:   "bob",
		MarriedAt: now,
	}
	svc := newTestRelationships(snap)

	// Married to each other: blocked regardless of who proposes.
	err := svc.Propose(context.Background(), "alice", "bob")
	assert.ErrorIs(t, err, ErrAlreadyMarried)
	err = svc.Propose(context.Background(), "bob", "alice")
	assert.ErrorIs(t, err, ErrAlreadyMarried)

	// Married to someone else: a new proposal goes through.
	err = svc.Propose(context.Background(), "alice", "carol")
	assert.NoError(t, err)
}

func TestRelationshipService_Accept_PaysBonusAndStartsHoneymoon(t *testing.T) {
	now := time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	svc := newTestRelationships(snap)

	marriage, err := svc.Accept(context.Background(), "alice", "bob", now)

	require.NoError(t, err)
	assert.True(t, marriage.Honeymoon)
	assert.Equal(t, int64(1000), snap.Balances["alice"])
	assert.Equal(t, int64(1000), snap.Balances["bob"])
	assert.Len(t, snap.Marriages, 1)
}

func TestRelationshipService_Divorce_Succeeds(t *testing.T) {
	married := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := married.AddDate(0, 6, 0)
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 6000
	snap.Marriages[models.MarriageID("alice", "bob", married)] = &models.Marriage{
		PersonA:   "alice",
		PersonB:   "bob",
		MarriedAt: married,
	}
	svc := newTestRelationships(snap)

	result, err := svc.Divorce(context.Background(), "alice", now)

	require.NoError(t, err)
	assert.Equal(t, int64(5000), result.Cost)
	assert.Equal(t, int64(1000), result.NewBalance)
	assert.Empty(t, snap.Marriages)
	assert.Equal(t, now, snap.DivorceCooldowns["alice"])
}

func TestRelationshipService_Divorce_CooldownWindow(t *testing.T) {
	married := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	lastDivorce := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 20000
	snap.DivorceCooldowns["alice"] = lastDivorce
	snap.Marriages[models.MarriageID("alice", "bob", married)] = &models.Marriage{
		PersonA:   "alice",
		PersonB:   "bob",
		MarriedAt: married,
	}
	svc := newTestRelationships(snap)

	_, err := svc.Divorce(context.Background(), "alice", lastDivorce.AddDate(0, 0, 3))
	assert.ErrorIs(t, err, ErrCooldownActive)
	assert.Len(t, snap.Marriages, 1)
	assert.Equal(t, int64(20000), snap.Balances["alice"])

	_, err = svc.Divorce(context.Background(), "alice", lastDivorce.AddDate(0, 0, 8))
	assert.NoError(t, err)
	assert.Empty(t, snap.Marriages)
}

func TestRelationshipService_Divorce_NotMarried(t *testing.T) {
	svc := newTestRelationships(models.NewSnapshot())

	_, err := svc.Divorce(context.Background(), "alice", time.Now())

	assert.ErrorIs(t, err, ErrNotMarried)
}

func TestRelationshipService_Divorce_InsufficientFunds(t *testing.T) {
	married := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 4999
	snap.Marriages[models.MarriageID("alice", "bob", married)] = &models.Marriage{
		PersonA:   "alice",
		PersonB:   "bob",
		MarriedAt: married,
	}
	svc := newTestRelationships(snap)

	_, err := svc.Divorce(context.Background(), "alice", married.AddDate(1, 0, 0))

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Len(t, snap.Marriages, 1)
	assert.Empty(t, snap.DivorceCooldowns)
}

func TestRelationshipService_CelebrateAnniversary(t *testing.T) {
	married := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	snap.Marriages[models.MarriageID("alice", "bob", married)] = &models.Marriage{
		PersonA:   "alice",
		PersonB:   "bob",
		MarriedAt: married,
	}
	svc := newTestRelationships(snap)
	ctx := context.Background()

	// Wrong day.
	_, err := svc.CelebrateAnniversary(ctx, "alice", time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNotAnniversary)

	// Second anniversary pays 500 per year to both spouses.
	result, err := svc.CelebrateAnniversary(ctx, "alice", time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Years)
	assert.Equal(t, int64(1000), result.Bonus)
	assert.Equal(t, int64(1000), snap.Balances["alice"])
	assert.Equal(t, int64(1000), snap.Balances["bob"])

	// The spouse cannot claim the same year again.
	_, err = svc.CelebrateAnniversary(ctx, "bob", time.Date(2026, 3, 15, 20, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrAlreadyCelebrated)
}

func TestRelationshipService_HoneymoonStatus_LazyExpiry(t *testing.T) {
	married := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	snap.Marriages[models.MarriageID("alice", "bob", married)] = &models.Marriage{
		PersonA:   "alice",
		PersonB:   "bob",
		MarriedAt: married,
		Honeymoon: true,
	}
	svc := newTestRelationships(snap)
	ctx := context.Background()

	status, err := svc.HoneymoonStatus(ctx, "alice", married.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.True(t, status.Active)
	assert.Equal(t, 4, status.DaysRemaining)
	assert.Equal(t, "bob", status.SpouseID)

	// Past the window the first check flips the flag.
	_, err = svc.HoneymoonStatus(ctx, "alice", married.AddDate(0, 0, 8))
	assert.ErrorIs(t, err, ErrHoneymoonOver)

	for _, m := range snap.Marriages {
		assert.False(t, m.Honeymoon)
	}

	// Flag already off, even at a time inside the window.
	_, err = svc.HoneymoonStatus(ctx, "alice", married.AddDate(0, 0, 3))
	assert.ErrorIs(t, err, ErrHoneymoonOver)
}

func TestRelationshipService_GiftSpouse(t *testing.T) {
	married := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 150
	snap.Marriages[models.MarriageID("alice", "bob", married)] = &models.Marriage{
		PersonA:   "alice",
		PersonB:   "bob",
		MarriedAt: married,
	}
	svc := newTestRelationships(snap)

	spouseID, err := svc.GiftSpouse(context.Background(), "alice", "Alice", "flowers")

	require.NoError(t, err)
	assert.Equal(t, "bob", spouseID)
	assert.Equal(t, int64(50), snap.Balances["alice"])

	marriage, err := svc.MarriageOf("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice gave: flowers"}, marriage.Gifts)
}

func TestRelationshipService_BuyGift(t *testing.T) {
	now := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 100
	svc := newTestRelationships(snap)
	ctx := context.Background()

	err := svc.BuyGift(ctx, "alice", "Alice", "🌹 Rose", "bob", now)
	require.NoError(t, err)
	assert.Equal(t, int64(50), snap.Balances["alice"])

	gifts := svc.GiftsFor("bob")
	require.Len(t, gifts, 1)
	assert.Equal(t, "🌹 Rose", gifts[0].Name)
	assert.Equal(t, "Alice", gifts[0].From)

	err = svc.BuyGift(ctx, "alice", "Alice", "💎 Necklace", "bob", now)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	err = svc.BuyGift(ctx, "alice", "Alice", "🚗 Car", "bob", now)
	assert.ErrorIs(t, err, ErrNotFound)
}
