package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mingle/models"
	"mingle/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_LoadEmpty(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	store := NewStore(testDB.DB, t.TempDir())

	snap, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, snap.Balances)
	assert.Empty(t, snap.Ships)
	assert.Empty(t, snap.Marriages)
	assert.Empty(t, snap.Calls)
}

func TestStore_BalancesRoundTrip(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	store := NewStore(testDB.DB, t.TempDir())
	ctx := context.Background()

	balances := map[string]int64{
		"100000000000000001": 500,
		"100000000000000002": 12345,
	}
	require.NoError(t, store.SaveBalances(ctx, balances))

	// Saves upsert, so a changed value overwrites.
	balances["100000000000000001"] = 750
	require.NoError(t, store.SaveBalances(ctx, balances))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, balances, snap.Balances)
}

func TestStore_CooldownsRoundTrip(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	store := NewStore(testDB.DB, t.TempDir())
	ctx := context.Background()

	// Balances must be non-empty or Load takes the legacy-import path.
	require.NoError(t, store.SaveBalances(ctx, map[string]int64{"u1": 1}))

	claimDate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveDailyCooldowns(ctx, map[string]time.Time{"u1": claimDate}))

	divorcedAt := time.Date(2026, 2, 1, 17, 30, 0, 0, time.UTC)
	require.NoError(t, store.SaveDivorceCooldowns(ctx, map[string]time.Time{"u1": divorcedAt}))

	snap, err := store.Load(ctx)
	require.NoError(t, err)

	// The claim date column is a DATE; only the calendar date survives.
	got, ok := snap.DailyCooldowns["u1"]
	require.True(t, ok)
	gy, gm, gd := got.Date()
	assert.Equal(t, 2026, gy)
	assert.Equal(t, time.March, gm)
	assert.Equal(t, 5, gd)

	gotDivorce, ok := snap.DivorceCooldowns["u1"]
	require.True(t, ok)
	assert.WithinDuration(t, divorcedAt, gotDivorce, time.Second)
}

func TestStore_DocumentCollectionsRoundTrip(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	store := NewStore(testDB.DB, t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.SaveBalances(ctx, map[string]int64{"u1": 1}))

	createdAt := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	ships := map[string]*models.Ship{
		"a-b": {PersonA: "a", PersonB: "b", Likes: 3, CreatedBy: "c", CreatedAt: createdAt},
	}
	marriages := map[string]*models.Marriage{
		models.MarriageID("a", "b", createdAt): {
			PersonA:                 "a",
			PersonB:                 "b",
			MarriedAt:               createdAt,
			AnniversariesCelebrated: 1,
			Honeymoon:               true,
			Gifts:                   []string{"Alice gave: flowers"},
		},
	}
	calls := map[string]*models.Call{
		models.CallID("chan1", createdAt): {
			ID:        models.CallID("chan1", createdAt),
			Title:     "Game night",
			CreatorID: "a",
			ChannelID: "chan1",
			MessageID: "msg1",
			CreatedAt: createdAt,
		},
	}
	participants := map[string][]string{
		models.CallID("chan1", createdAt): {"b", "c"},
	}
	inventory := map[string][]models.Gift{
		"b": {{Name: "🌹 Rose", From: "Alice", GivenAt: createdAt}},
	}

	require.NoError(t, store.SaveShips(ctx, ships))
	require.NoError(t, store.SaveMarriages(ctx, marriages))
	require.NoError(t, store.SaveCalls(ctx, calls))
	require.NoError(t, store.SaveParticipants(ctx, participants))
	require.NoError(t, store.SaveInventory(ctx, inventory))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ships, snap.Ships)
	assert.Equal(t, marriages, snap.Marriages)
	assert.Equal(t, calls, snap.Calls)
	assert.Equal(t, participants, snap.Participants)
	assert.Equal(t, inventory, snap.Inventory)

	// A rewrite replaces the whole document, dropping deleted keys.
	delete(calls, models.CallID("chan1", createdAt))
	delete(participants, models.CallID("chan1", createdAt))
	require.NoError(t, store.SaveCalls(ctx, calls))
	require.NoError(t, store.SaveParticipants(ctx, participants))

	snap, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Calls)
	assert.Empty(t, snap.Participants)
}

func TestStore_LegacyImport(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	dir := t.TempDir()
	ctx := context.Background()

	writeFixture(t, dir, "economy.json", `{"u1": 500, "u2": 1200}`)
	writeFixture(t, dir, "ships.json", `{"u1-u2": {"person_a": "u1", "person_b": "u2", "likes": 7, "created_by": "u3", "created_at": "2025-06-01T10:00:00Z"}}`)
	writeFixture(t, dir, "marriages.json", `{"u1-u2-1748772000": {"person_a": "u1", "person_b": "u2", "married_at": "2025-06-01T10:00:00Z", "anniversaries_celebrated": 0, "honeymoon": false, "gifts": []}}`)
	writeFixture(t, dir, "calls.json", `{"calls": {"chan1-1748772000": {"id": "chan1-1748772000", "title": "Raid", "creator_id": "u1", "channel_id": "chan1", "created_at": "2025-06-01T10:00:00Z"}}, "participants": {"chan1-1748772000": ["u2"]}}`)
	// Obsolete files are tolerated and ignored.
	writeFixture(t, dir, "anniversary.json", `{"u1": "2025-06-01"}`)
	// A corrupt optional file must not abort the import.
	writeFixture(t, dir, "inventory.json", `{not json`)

	store := NewStore(testDB.DB, dir)
	snap, err := store.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(500), snap.Balances["u1"])
	assert.Equal(t, int64(1200), snap.Balances["u2"])
	assert.Equal(t, int64(7), snap.Ships["u1-u2"].Likes)
	assert.Len(t, snap.Marriages, 1)
	assert.Equal(t, "Raid", snap.Calls["chan1-1748772000"].Title)
	assert.Equal(t, []string{"u2"}, snap.Participants["chan1-1748772000"])
	assert.Empty(t, snap.Inventory)

	// The import persisted immediately: a fresh store pointed at an empty
	// directory sees the same data from the database.
	fresh := NewStore(testDB.DB, t.TempDir())
	snap2, err := fresh.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Balances, snap2.Balances)
	assert.Equal(t, "Raid", snap2.Calls["chan1-1748772000"].Title)
}

func TestStore_LegacyImportSkippedWhenDataExists(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	dir := t.TempDir()
	ctx := context.Background()

	writeFixture(t, dir, "economy.json", `{"u1": 999999}`)

	store := NewStore(testDB.DB, dir)
	require.NoError(t, store.SaveBalances(ctx, map[string]int64{"u1": 42}))

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), snap.Balances["u1"])
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
