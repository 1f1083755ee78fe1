package service

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"mingle/config"
	"mingle/models"
)

// SlotSymbols are the reel faces, in payout-table order.
var SlotSymbols = []string{"🍒", "🍋", "🍊", "🍇", "💎", "7️⃣"}

// Coin flip and rock-paper-scissors choices accepted by the games.
const (
	CoinHeads = "heads"
	CoinTails = "tails"

	HandRock     = "rock"
	HandPaper    = "paper"
	HandScissors = "scissors"
)

// RPSOutcome is the result of a rock-paper-scissors round.
type RPSOutcome int

const (
	RPSDraw RPSOutcome = iota
	RPSWin
	RPSLoss
)

// EconomyService owns balances, the daily reward gate and the gambling
// mini-games.
type EconomyService struct {
	ledger *Ledger
	rng    randSource
}

// NewEconomyService creates a new economy service
func NewEconomyService(ledger *Ledger) *EconomyService {
	return &EconomyService{
		ledger: ledger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Balance returns the user's balance, 0 for unknown users.
func (s *EconomyService) Balance(userID string) int64 {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	return s.ledger.data.Balances[userID]
}

// Credit adds amount to the user's balance, creating the record if absent.
func (s *EconomyService) Credit(ctx context.Context, userID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidArgument
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	s.ledger.data.Balances[userID] += amount
	s.ledger.saveBalances(ctx)
	return nil
}

// Debit removes amount from the user's balance, failing without mutation if
// the balance does not cover it.
func (s *EconomyService) Debit(ctx context.Context, userID string, amount int64) error {
	if amount <= 0 {
		return ErrInvalidArgument
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	if s.ledger.data.Balances[userID] < amount {
		return ErrInsufficientFunds
	}
	s.ledger.data.Balances[userID] -= amount
	s.ledger.saveBalances(ctx)
	return nil
}

// Transfer moves amount between two users. The ledger lock makes the
// debit/credit pair atomic; on any failure nothing has mutated.
func (s *EconomyService) Transfer(ctx context.Context, fromID, toID string, amount int64) (*models.TransferResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidArgument
	}
	if fromID == toID {
		return nil, ErrSelfTarget
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	if s.ledger.data.Balances[fromID] < amount {
		return nil, ErrInsufficientFunds
	}

	s.ledger.data.Balances[fromID] -= amount
	s.ledger.data.Balances[toID] += amount
	s.ledger.saveBalances(ctx)

	return &models.TransferResult{
		Amount:     amount,
		NewBalance: s.ledger.data.Balances[fromID],
	}, nil
}

// ClaimDaily grants the daily reward at most once per calendar date. The gate
// compares dates, not elapsed time: a claim at 23:59 unlocks again at 00:00.
func (s *EconomyService) ClaimDaily(ctx context.Context, userID string, today time.Time) (*models.DailyResult, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	if last, ok := s.ledger.data.DailyCooldowns[userID]; ok && sameDate(last, today) {
		return nil, ErrAlreadyClaimed
	}

	reward := config.Get().DailyReward
	s.ledger.data.Balances[userID] += reward
	s.ledger.data.DailyCooldowns[userID] = today
	s.ledger.saveBalances(ctx)
	s.ledger.saveDailyCooldowns(ctx)

	return &models.DailyResult{
		Reward:     reward,
		NewBalance: s.ledger.data.Balances[userID],
	}, nil
}

// Slot spins the slot machine. Stake is deducted up front; the payout table:
// triple 7️⃣ 1000, triple 💎 500, any other triple 200, an adjacent pair 75.
func (s *EconomyService) Slot(ctx context.Context, userID string) (*models.SlotResult, error) {
	stake := config.Get().SlotStake

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	if s.ledger.data.Balances[userID] < stake {
		return nil, ErrInsufficientFunds
	}
	s.ledger.data.Balances[userID] -= stake

	var reels [3]string
	for i := range reels {
		reels[i] = SlotSymbols[s.rng.Intn(len(SlotSymbols))]
	}

	var prize int64
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		switch reels[0] {
		case "7️⃣":
			prize = 1000
		case "💎":
			prize = 500
		default:
			prize = 200
		}
	case reels[0] == reels[1] || reels[1] == reels[2]:
		prize = 75
	}

	s.ledger.data.Balances[userID] += prize
	s.ledger.saveBalances(ctx)

	return &models.SlotResult{
		Reels:      reels,
		Prize:      prize,
		NewBalance: s.ledger.data.Balances[userID],
	}, nil
}

// CoinFlip bets stake on heads or tails at even money.
func (s *EconomyService) CoinFlip(ctx context.Context, userID, choice string, stake int64) (*models.CoinFlipResult, error) {
	choice = strings.ToLower(choice)
	if choice != CoinHeads && choice != CoinTails {
		return nil, ErrInvalidArgument
	}
	if stake <= 0 {
		return nil, ErrInvalidArgument
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	if s.ledger.data.Balances[userID] < stake {
		return nil, ErrInsufficientFunds
	}
	s.ledger.data.Balances[userID] -= stake

	outcome := CoinHeads
	if s.rng.Intn(2) == 1 {
		outcome = CoinTails
	}

	won := outcome == choice
	var prize int64
	if won {
		prize = stake * 2
		s.ledger.data.Balances[userID] += prize
	}
	s.ledger.saveBalances(ctx)

	return &models.CoinFlipResult{
		Outcome:    outcome,
		Won:        won,
		Prize:      prize,
		NewBalance: s.ledger.data.Balances[userID],
	}, nil
}

// GuessNumber bets the fixed stake on a number between 1 and 10. Funds are
// checked before the range is validated, matching the long-standing command
// behavior.
func (s *EconomyService) GuessNumber(ctx context.Context, userID string, guess int) (*models.GuessResult, error) {
	cfg := config.Get()

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	if s.ledger.data.Balances[userID] < cfg.GuessStake {
		return nil, ErrInsufficientFunds
	}
	if guess < 1 || guess > 10 {
		return nil, ErrInvalidArgument
	}

	s.ledger.data.Balances[userID] -= cfg.GuessStake

	secret := s.rng.Intn(10) + 1
	won := guess == secret

	var prize int64
	if won {
		prize = cfg.GuessPrize
		s.ledger.data.Balances[userID] += prize
	}
	s.ledger.saveBalances(ctx)

	return &models.GuessResult{
		Secret:     secret,
		Won:        won,
		Prize:      prize,
		NewBalance: s.ledger.data.Balances[userID],
	}, nil
}

// RollDice rolls a die with the given number of sides. Pure: no stake and no
// state.
func (s *EconomyService) RollDice(sides int) (int, error) {
	if sides < 2 {
		return 0, ErrInvalidArgument
	}
	return s.rng.Intn(sides) + 1, nil
}

// RockPaperScissors plays one stakeless round against the bot.
func (s *EconomyService) RockPaperScissors(choice string) (botChoice string, outcome RPSOutcome, err error) {
	choice = strings.ToLower(choice)
	hands := []string{HandRock, HandPaper, HandScissors}

	valid := false
	for _, h := range hands {
		if choice == h {
			valid = true
			break
		}
	}
	if !valid {
		return "", RPSDraw, ErrInvalidArgument
	}

	botChoice = hands[s.rng.Intn(len(hands))]

	switch {
	case choice == botChoice:
		outcome = RPSDraw
	case choice == HandRock && botChoice == HandScissors,
		choice == HandPaper && botChoice == HandRock,
		choice == HandScissors && botChoice == HandPaper:
		outcome = RPSWin
	default:
		outcome = RPSLoss
	}

	return botChoice, outcome, nil
}

// sameDate reports whether two instants fall on the same calendar date.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
