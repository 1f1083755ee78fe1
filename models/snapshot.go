package models

import (
	"time"
)

// Snapshot holds every persisted collection in memory. The running process
// owns these maps exclusively; the store is a mirror, not a second writer.
type Snapshot struct {
	Balances         map[string]int64
	DailyCooldowns   map[string]time.Time
	DivorceCooldowns map[string]time.Time
	Inventory        map[string][]Gift
	Ships            map[string]*Ship
	Marriages        map[string]*Marriage
	Calls            map[string]*Call
	Participants     map[string][]string
}

// NewSnapshot returns a snapshot with every collection initialized empty.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Balances:         make(map[string]int64),
		DailyCooldowns:   make(map[string]time.Time),
		DivorceCooldowns: make(map[string]time.Time),
		Inventory:        make(map[string][]Gift),
		Ships:            make(map[string]*Ship),
		Marriages:        make(map[string]*Marriage),
		Calls:            make(map[string]*Call),
		Participants:     make(map[string][]string),
	}
}
