package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mingle/models"
)

func newTestEconomy(snap *models.Snapshot, script ...int) *EconomyService {
	ledger, _ := newTestLedger(snap)
	svc := NewEconomyService(ledger)
	if len(script) > 0 {
		svc.rng = &scriptedRand{values: script}
	}
	return svc
}

func TestEconomyService_Balance_UnknownUserIsZero(t *testing.T) {
	svc := newTestEconomy(models.NewSnapshot())
	assert.Equal(t, int64(0), svc.Balance("12345"))
}

func TestEconomyService_Transfer_Success(t *testing.T) {
	ctx := context.Background()
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 1000
	svc := newTestEconomy(snap)

	result, err := svc.Transfer(ctx, "alice", "bob", 300)

	require.NoError(t, err)
	assert.Equal(t, int64(700), result.NewBalance)
	assert.Equal(t, int64(700), svc.Balance("alice"))
	assert.Equal(t, int64(300), svc.Balance("bob"))
}

func TestEconomyService_Transfer_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 100
	svc := newTestEconomy(snap)

	_, err := svc.Transfer(ctx, "alice", "bob", 300)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(100), svc.Balance("alice"))
	assert.Equal(t, int64(0), svc.Balance("bob"))
}

func TestEconomyService_Transfer_SelfTarget(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 1000
	svc := newTestEconomy(snap)

	_, err := svc.Transfer(context.Background(), "alice", "alice", 100)

	assert.ErrorIs(t, err, ErrSelfTarget)
	assert.Equal(t, int64(1000), svc.Balance("alice"))
}

func TestEconomyService_Transfer_NonPositiveAmount(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 1000
	svc := newTestEconomy(snap)

	_, err := svc.Transfer(context.Background(), "alice", "bob", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.Transfer(context.Background(), "alice", "bob", -50)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEconomyService_Debit_NoMutationOnFailure(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 40
	svc := newTestEconomy(snap)

	err := svc.Debit(context.Background(), "alice", 41)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(40), svc.Balance("alice"))
}

func TestEconomyService_ClaimDaily_OncePerCalendarDate(t *testing.T) {
	ctx := context.Background()
	svc := newTestEconomy(models.NewSnapshot())

	lateEvening := time.Date(2026, 3, 5, 23, 59, 0, 0, time.UTC)
	result, err := svc.ClaimDaily(ctx, "alice", lateEvening)
	require.NoError(t, err)
	assert.Equal(t, int64(500), result.Reward)
	assert.Equal(t, int64(500), result.NewBalance)

	// Same date, any time of day.
	_, err = svc.ClaimDaily(ctx, "alice", lateEvening.Add(-5*time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyClaimed)

	// One minute later it is the next date; the gate compares dates, not
	// elapsed time.
	result, err = svc.ClaimDaily(ctx, "alice", lateEvening.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1000), result.NewBalance)
}

func TestEconomyService_Slot_TripleSeven(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 1000
	svc := newTestEconomy(snap, 5, 5, 5)

	result, err := svc.Slot(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, [3]string{"7️⃣", "7️⃣", "7️⃣"}, result.Reels)
	assert.Equal(t, int64(1000), result.Prize)
	assert.Equal(t, int64(1950), result.NewBalance)
}

func TestEconomyService_Slot_TripleDiamond(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 1000
	svc := newTestEconomy(snap, 4, 4, 4)

	result, err := svc.Slot(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(500), result.Prize)
	assert.Equal(t, int64(1450), result.NewBalance)
}

func TestEconomyService_Slot_OtherTriple(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 1000
	svc := newTestEconomy(snap, 0, 0, 0)

	result, err := svc.Slot(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(200), result.Prize)
	assert.Equal(t, int64(1150), result.NewBalance)
}

func TestEconomyService_Slot_AdjacentPair(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 1000
	svc := newTestEconomy(snap, 1, 1, 2)

	result, err := svc.Slot(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(75), result.Prize)
	assert.Equal(t, int64(1025), result.NewBalance)
}

func TestEconomyService_Slot_OuterPairDoesNotPay(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 1000
	svc := newTestEconomy(snap, 1, 2, 1)

	result, err := svc.Slot(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Prize)
	assert.Equal(t, int64(950), result.NewBalance)
}

func TestEconomyService_Slot_InsufficientFunds(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 49
	svc := newTestEconomy(snap)

	_, err := svc.Slot(context.Background(), "alice")

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(49), svc.Balance("alice"))
}

func TestEconomyService_CoinFlip_WinDoublesStake(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 500
	svc := newTestEconomy(snap, 0) // heads

	result, err := svc.CoinFlip(context.Background(), "alice", "heads", 100)

	require.NoError(t, err)
	assert.True(t, result.Won)
	assert.Equal(t, CoinHeads, result.Outcome)
	assert.Equal(t, int64(200), result.Prize)
	assert.Equal(t, int64(600), result.NewBalance)
}

func TestEconomyService_CoinFlip_LossForfeitsStake(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 500
	svc := newTestEconomy(snap, 1) // tails

	result, err := svc.CoinFlip(context.Background(), "alice", "heads", 100)

	require.NoError(t, err)
	assert.False(t, result.Won)
	assert.Equal(t, int64(400), result.NewBalance)
}

func TestEconomyService_CoinFlip_InvalidChoice(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 500
	svc := newTestEconomy(snap)

	_, err := svc.CoinFlip(context.Background(), "alice", "edge", 100)

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, int64(500), svc.Balance("alice"))
}

func TestEconomyService_GuessNumber_Win(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 100
	svc := newTestEconomy(snap, 6) // secret is 7

	result, err := svc.GuessNumber(context.Background(), "alice", 7)

	require.NoError(t, err)
	assert.True(t, result.Won)
	assert.Equal(t, 7, result.Secret)
	assert.Equal(t, int64(150), result.Prize)
	assert.Equal(t, int64(220), result.NewBalance)
}

func TestEconomyService_GuessNumber_Loss(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 100
	svc := newTestEconomy(snap, 6) // secret is 7

	result, err := svc.GuessNumber(context.Background(), "alice", 3)

	require.NoError(t, err)
	assert.False(t, result.Won)
	assert.Equal(t, int64(70), result.NewBalance)
}

func TestEconomyService_GuessNumber_FundsCheckedBeforeRange(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 10
	svc := newTestEconomy(snap)

	// An out-of-range guess from a broke user reports the funds problem.
	_, err := svc.GuessNumber(context.Background(), "alice", 99)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	snap.Balances["alice"] = 100
	_, err = svc.GuessNumber(context.Background(), "alice", 99)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, int64(100), svc.Balance("alice"))
}

func TestEconomyService_RollDice(t *testing.T) {
	svc := newTestEconomy(models.NewSnapshot(), 3)

	roll, err := svc.RollDice(6)
	require.NoError(t, err)
	assert.Equal(t, 4, roll)

	_, err = svc.RollDice(1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEconomyService_RockPaperScissors(t *testing.T) {
	svc := newTestEconomy(models.NewSnapshot(), 2, 0, 1)

	botChoice, outcome, err := svc.RockPaperScissors("rock")
	require.NoError(t, err)
	assert.Equal(t, HandScissors, botChoice)
	assert.Equal(t, RPSWin, outcome)

	_, outcome, err = svc.RockPaperScissors("rock")
	require.NoError(t, err)
	assert.Equal(t, RPSDraw, outcome)

	_, outcome, err = svc.RockPaperScissors("Rock")
	require.NoError(t, err)
	assert.Equal(t, RPSLoss, outcome)

	_, _, err = svc.RockPaperScissors("lizard")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEconomyService_Slot_PersistsBalances(t *testing.T) {
	snap := models.NewSnapshot()
	snap.Balances["alice"] = 1000
	ledger, store := newTestLedger(snap)
	svc := NewEconomyService(ledger)
	svc.rng = &scriptedRand{values: []int{0, 1, 2}}

	_, err := svc.Slot(context.Background(), "alice")

	require.NoError(t, err)
	store.AssertCalled(t, "SaveBalances", mock.Anything, mock.Anything)
}
