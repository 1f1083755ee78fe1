package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingle/models"
)

func newTestShips(snap *models.Snapshot, script ...int) *ShipService {
	ledger, _ := newTestLedger(snap)
	svc := NewShipService(ledger)
	if len(script) > 0 {
		svc.rng = &scriptedRand{values: script}
	}
	return svc
}

func TestShipService_CreateShip(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	svc := newTestShips(snap)
	ctx := context.Background()

	ship, err := svc.CreateShip(ctx, "alice", "bob", "carol", now)
	require.NoError(t, err)
	assert.Equal(t, "alice", ship.PersonA)
	assert.Equal(t, "carol", ship.CreatedBy)
	assert.Equal(t, int64(0), ship.Likes)

	_, err = svc.CreateShip(ctx, "alice", "bob", "dave", now)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = svc.CreateShip(ctx, "alice", "alice", "dave", now)
	assert.ErrorIs(t, err, ErrSelfTarget)

	// The key keeps argument order, so the reversed pair is a new record.
	_, err = svc.CreateShip(ctx, "bob", "alice", "dave", now)
	assert.NoError(t, err)
}

func TestShipService_LikeShip(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	svc := newTestShips(snap)
	ctx := context.Background()

	_, err := svc.LikeShip(ctx, "alice", "bob")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateShip(ctx, "alice", "bob", "carol", now)
	require.NoError(t, err)

	likes, err := svc.LikeShip(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)

	likes, err = svc.LikeShip(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, int64(2), likes)

	// Reversed arguments address a different key.
	_, err = svc.LikeShip(ctx, "bob", "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestShipService_TopShips_DeterministicOrdering(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Ships["alice-bob"] = &models.Ship{PersonA: "alice", PersonB: "bob", Likes: 5}
	snap.Ships["carol-dave"] = &models.Ship{PersonA: "carol", PersonB: "dave", Likes: 9}
	snap.Ships["eve-frank"] = &models.Ship{PersonA: "eve", PersonB: "frank", Likes: 5}
	svc := newTestShips(snap)

	for i := 0; i < 5; i++ {
		top := svc.TopShips(10)
		require.Len(t, top, 3)
		assert.Equal(t, "carol", top[0].PersonA)
		assert.Equal(t, "alice", top[1].PersonA)
		assert.Equal(t, "eve", top[2].PersonA)
	}

	top := svc.TopShips(2)
	require.Len(t, top, 2)
	assert.Equal(t, "carol", top[0].PersonA)
}

func TestShipService_ShipsCreatedBy(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Ships["alice-bob"] = &models.Ship{PersonA: "alice", PersonB: "bob", CreatedBy: "carol"}
	snap.Ships["dave-eve"] = &models.Ship{PersonA: "dave", PersonB: "eve", CreatedBy: "frank"}
	snap.Ships["alice-dave"] = &models.Ship{PersonA: "alice", PersonB: "dave", CreatedBy: "carol"}
	svc := newTestShips(snap)

	mine := svc.ShipsCreatedBy("carol")
	require.Len(t, mine, 2)
	assert.Equal(t, "bob", mine[0].PersonB)
	assert.Equal(t, "dave", mine[1].PersonB)

	assert.Empty(t, svc.ShipsCreatedBy("nobody"))
}

func TestShipService_Match_Bonuses(t *testing.T) {
	// First value feeds the base roll, second the soulmate roll.
	svc := newTestShips(models.NewSnapshot(), 10, 1)

	result := svc.Match(MatchInput{
		SameGuild:          true,
		CommonRoles:        3,
		AccountAgeDiffDays: 10,
		SameInitial:        true,
	})

	// Base 50 plus guild 5, roles 6, age 3, initial 2.
	assert.Equal(t, 66, result.Percent)
	assert.False(t, result.Soulmate)
}

func TestShipService_Match_CapsAtHundred(t *testing.T) {
	svc := newTestShips(models.NewSnapshot(), 50, 1)

	result := svc.Match(MatchInput{SameGuild: true, CommonRoles: 10})

	assert.Equal(t, 100, result.Percent)
}

func TestShipService_Match_SoulmateOverride(t *testing.T) {
	svc := newTestShips(models.NewSnapshot(), 0, 0)

	result := svc.Match(MatchInput{})

	assert.True(t, result.Soulmate)
	assert.Equal(t, 100, result.Percent)
}

func TestShipService_Analyze(t *testing.T) {
	svc := newTestShips(models.NewSnapshot(), 10, 20, 30, 40, 50)

	result := svc.Analyze()

	require.Len(t, result.Scores, len(AnalysisCategories))
	assert.Equal(t, 10, result.Scores["Friendship"])
	assert.Equal(t, 50, result.Scores["Future"])
	assert.Equal(t, 30, result.Average)
}

func TestShipService_ZodiacCompatibility(t *testing.T) {
	svc := newTestShips(models.NewSnapshot(), 20)

	score, err := svc.ZodiacCompatibility("Aries", "Pisces")
	require.NoError(t, err)
	assert.Equal(t, 60, score)

	_, err = svc.ZodiacCompatibility("Aries", "Ophiuchus")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
