package models

// DailyResult is the outcome of a granted daily reward claim.
type DailyResult struct {
	Reward     int64
	NewBalance int64
}

// TransferResult is the outcome of a successful balance transfer.
type TransferResult struct {
	Amount     int64
	NewBalance int64
}

// SlotResult is the outcome of one slot machine spin.
type SlotResult struct {
	Reels      [3]string
	Prize      int64
	NewBalance int64
}

// CoinFlipResult is the outcome of one coin flip bet.
type CoinFlipResult struct {
	Outcome    string
	Won        bool
	Prize      int64
	NewBalance int64
}

// GuessResult is the outcome of one number-guess round.
type GuessResult struct {
	Secret     int
	Won        bool
	Prize      int64
	NewBalance int64
}

// DivorceResult is the outcome of a completed divorce.
type DivorceResult struct {
	Cost       int64
	NewBalance int64
}

// AnniversaryResult is the outcome of a granted anniversary celebration.
type AnniversaryResult struct {
	Years int
	Bonus int64
}

// HoneymoonStatus reports the state of a marriage's honeymoon window.
type HoneymoonStatus struct {
	Active        bool
	DaysRemaining int
	SpouseID      string
}
