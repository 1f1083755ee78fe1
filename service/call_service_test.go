package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mingle/events"
	"mingle/models"
)

func newTestCalls(snap *models.Snapshot) *CallService {
	ledger, _ := newTestLedger(snap)
	return NewCallService(ledger)
}

func testCallParams(channelID string, createdAt time.Time) CreateCallParams {
	return CreateCallParams{
		Title:       "Game night",
		Schedule:    "12/25 at 8pm",
		Location:    "General VC",
		Description: "Bring snacks",
		Emoji:       "✅",
		CreatorID:   "alice",
		CreatorName: "Alice",
		ChannelID:   channelID,
		CreatedAt:   createdAt,
	}
}

func TestCallService_CreateCall(t *testing.T) {
	now := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	svc := newTestCalls(snap)
	ctx := context.Background()

	call, err := svc.CreateCall(ctx, testCallParams("chan1", now))
	require.NoError(t, err)
	assert.Equal(t, models.CallID("chan1", now), call.ID)
	assert.Empty(t, call.MessageID)

	roster, err := svc.Roster(call.ID)
	require.NoError(t, err)
	assert.Empty(t, roster)

	// Same channel, same second: the ID collides.
	_, err = svc.CreateCall(ctx, testCallParams("chan1", now))
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Another channel in the same second is fine.
	_, err = svc.CreateCall(ctx, testCallParams("chan2", now))
	assert.NoError(t, err)
}

func TestCallService_AttachMessage(t *testing.T) {
	now := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	svc := newTestCalls(models.NewSnapshot())
	ctx := context.Background()

	call, err := svc.CreateCall(ctx, testCallParams("chan1", now))
	require.NoError(t, err)

	require.NoError(t, svc.AttachMessage(ctx, call.ID, "msg42"))

	found, err := svc.CallByMessageID("msg42")
	require.NoError(t, err)
	assert.Equal(t, call.ID, found.ID)

	assert.ErrorIs(t, svc.AttachMessage(ctx, "missing", "msg42"), ErrNotFound)
}

func TestCallService_Confirm_OrderAndDoubleConfirm(t *testing.T) {
	now := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	svc := newTestCalls(models.NewSnapshot())
	ctx := context.Background()

	call, err := svc.CreateCall(ctx, testCallParams("chan1", now))
	require.NoError(t, err)

	total, err := svc.Confirm(ctx, call.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = svc.Confirm(ctx, call.ID, "carol")
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	_, err = svc.Confirm(ctx, call.ID, "bob")
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)

	roster, err := svc.Roster(call.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob", "carol"}, roster)

	_, err = svc.Confirm(ctx, "missing", "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCallService_Confirm_EmitsRosterChange(t *testing.T) {
	now := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	ledger, _ := newTestLedger(snap)
	bus := events.NewBus()
	ledger.eventBus = bus
	svc := NewCallService(ledger)
	ctx := context.Background()

	received := make(chan events.CallRosterChangeEvent, 1)
	bus.Subscribe(events.EventTypeCallRosterChange, func(ctx context.Context, e events.Event) {
		received <- e.(events.CallRosterChangeEvent)
	})

	call, err := svc.CreateCall(ctx, testCallParams("chan1", now))
	require.NoError(t, err)
	require.NoError(t, svc.AttachMessage(ctx, call.ID, "msg42"))

	_, err = svc.Confirm(ctx, call.ID, "bob")
	require.NoError(t, err)

	select {
	case event := <-received:
		assert.Equal(t, call.ID, event.CallID)
		assert.Equal(t, "msg42", event.MessageID)
		assert.Equal(t, 1, event.Total)
	case <-time.After(time.Second):
		t.Fatal("no roster change event")
	}
}

func TestCallService_Cancel(t *testing.T) {
	now := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	snap := models.NewSnapshot()
	svc := newTestCalls(snap)
	ctx := context.Background()

	call, err := svc.CreateCall(ctx, testCallParams("chan1", now))
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, call.ID, "bob")
	require.NoError(t, err)

	// Only the creator may cancel.
	err = svc.Cancel(ctx, call.ID, "bob")
	assert.ErrorIs(t, err, ErrNotCreator)

	err = svc.Cancel(ctx, call.ID, "alice")
	require.NoError(t, err)
	assert.Empty(t, snap.Calls)
	assert.Empty(t, snap.Participants)

	err = svc.Cancel(ctx, call.ID, "alice")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCallService_RecentCallsInChannel(t *testing.T) {
	base := time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)
	svc := newTestCalls(models.NewSnapshot())
	ctx := context.Background()

	first, err := svc.CreateCall(ctx, testCallParams("chan1", base))
	require.NoError(t, err)
	second, err := svc.CreateCall(ctx, testCallParams("chan1", base.Add(time.Minute)))
	require.NoError(t, err)
	_, err = svc.CreateCall(ctx, testCallParams("chan2", base))
	require.NoError(t, err)

	_, err = svc.Confirm(ctx, second.ID, "bob")
	require.NoError(t, err)

	recent := svc.RecentCallsInChannel("chan1", 5)
	require.Len(t, recent, 2)
	assert.Equal(t, second.ID, recent[0].Call.ID)
	assert.Equal(t, 1, recent[0].Confirmed)
	assert.Equal(t, first.ID, recent[1].Call.ID)
	assert.Equal(t, 0, recent[1].Confirmed)

	recent = svc.RecentCallsInChannel("chan1", 1)
	require.Len(t, recent, 1)
	assert.Equal(t, second.ID, recent[0].Call.ID)
}
