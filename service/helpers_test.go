package service

import (
	"github.com/stretchr/testify/mock"

	"mingle/models"
)

// newTestLedger wraps a snapshot in a ledger backed by a persister that
// accepts every save. Tests that assert on persistence wire their own mock
// instead.
func newTestLedger(snap *models.Snapshot) (*Ledger, *MockPersister) {
	store := new(MockPersister)
	store.On("SaveBalances", mock.Anything, mock.Anything).Return(nil).Maybe()
	store.On("SaveDailyCooldowns", mock.Anything, mock.Anything).Return(nil).Maybe()
	store.On("SaveDivorceCooldowns", mock.Anything, mock.Anything).Return(nil).Maybe()
	store.On("SaveInventory", mock.Anything, mock.Anything).Return(nil).Maybe()
	store.On("SaveShips", mock.Anything, mock.Anything).Return(nil).Maybe()
	store.On("SaveMarriages", mock.Anything, mock.Anything).Return(nil).Maybe()
	store.On("SaveCalls", mock.Anything, mock.Anything).Return(nil).Maybe()
	store.On("SaveParticipants", mock.Anything, mock.Anything).Return(nil).Maybe()

	return &Ledger{data: snap, store: store}, store
}

// scriptedRand replays a fixed sequence of values, wrapping around at the
// end.
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}
