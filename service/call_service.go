package service

import (
	"context"
	"sort"
	"time"

	"mingle/events"
	"mingle/models"
)

// CreateCallParams carries everything needed to register a call announcement.
type CreateCallParams struct {
	Title       string
	Schedule    string
	Location    string
	Description string
	Emoji       string
	CreatorID   string
	CreatorName string
	ChannelID   string
	CreatedAt   time.Time
}

// CallSummary pairs a call with its confirmed attendee count for listings.
type CallSummary struct {
	Call      models.Call
	Confirmed int
}

// CallService owns the call registry and its attendance rosters.
type CallService struct {
	ledger *Ledger
}

// NewCallService creates a new call service
func NewCallService(ledger *Ledger) *CallService {
	return &CallService{ledger: ledger}
}

// CreateCall reserves the call ID and an empty roster. The announcement
// message does not exist yet; the caller sends it and then attaches its ID
// with AttachMessage. A second call in the same channel within the same
// second collides on the ID and is rejected.
func (s *CallService) CreateCall(ctx context.Context, params CreateCallParams) (*models.Call, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	id := models.CallID(params.ChannelID, params.CreatedAt)
	if _, ok := s.ledger.data.Calls[id]; ok {
		return nil, ErrAlreadyExists
	}

	call := &models.Call{
		ID:          id,
		Title:       params.Title,
		Schedule:    params.Schedule,
		Location:    params.Location,
		Description: params.Description,
		CreatorID:   params.CreatorID,
		CreatorName: params.CreatorName,
		ChannelID:   params.ChannelID,
		Emoji:       params.Emoji,
		CreatedAt:   params.CreatedAt,
	}
	s.ledger.data.Calls[id] = call
	s.ledger.data.Participants[id] = []string{}

	s.ledger.saveCalls(ctx)
	s.ledger.saveParticipants(ctx)

	copied := *call
	return &copied, nil
}

// AttachMessage records the announcement message ID on a freshly created
// call.
func (s *CallService) AttachMessage(ctx context.Context, callID, messageID string) error {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	call, ok := s.ledger.data.Calls[callID]
	if !ok {
		return ErrNotFound
	}

	call.MessageID = messageID
	s.ledger.saveCalls(ctx)
	return nil
}

// Confirm appends the user to the roster in confirmation order and returns
// the new total. A roster-change event fires so the announcement embed gets
// re-rendered.
func (s *CallService) Confirm(ctx context.Context, callID, userID string) (int, error) {
	s.ledger.mu.Lock()

	call, ok := s.ledger.data.Calls[callID]
	if !ok {
		s.ledger.mu.Unlock()
		return 0, ErrNotFound
	}

	for _, pid := range s.ledger.data.Participants[callID] {
		if pid == userID {
			s.ledger.mu.Unlock()
			return 0, ErrAlreadyConfirmed
		}
	}

	s.ledger.data.Participants[callID] = append(s.ledger.data.Participants[callID], userID)
	total := len(s.ledger.data.Participants[callID])
	s.ledger.saveParticipants(ctx)

	event := events.CallRosterChangeEvent{
		CallID:    callID,
		ChannelID: call.ChannelID,
		MessageID: call.MessageID,
		Total:     total,
	}
	s.ledger.mu.Unlock()

	s.ledger.emit(ctx, event)
	return total, nil
}

// Cancel deletes the call and its roster. Only the creator may cancel. A
// cancellation event fires so the announcement gets replaced with a notice.
func (s *CallService) Cancel(ctx context.Context, callID, userID string) error {
	s.ledger.mu.Lock()

	call, ok := s.ledger.data.Calls[callID]
	if !ok {
		s.ledger.mu.Unlock()
		return ErrNotFound
	}
	if call.CreatorID != userID {
		s.ledger.mu.Unlock()
		return ErrNotCreator
	}

	delete(s.ledger.data.Calls, callID)
	delete(s.ledger.data.Participants, callID)
	s.ledger.saveCalls(ctx)
	s.ledger.saveParticipants(ctx)

	event := events.CallCancelledEvent{
		CallID:        callID,
		ChannelID:     call.ChannelID,
		MessageID:     call.MessageID,
		Title:         call.Title,
		CancelledByID: userID,
	}
	s.ledger.mu.Unlock()

	s.ledger.emit(ctx, event)
	return nil
}

// CallByMessageID resolves a call from its announcement message.
func (s *CallService) CallByMessageID(messageID string) (*models.Call, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	for _, call := range s.ledger.data.Calls {
		if call.MessageID == messageID {
			copied := *call
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// RecentCallsInChannel returns up to n calls announced in the channel, newest
// first, each with its confirmed count.
func (s *CallService) RecentCallsInChannel(channelID string, n int) []CallSummary {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	var summaries []CallSummary
	for id, call := range s.ledger.data.Calls {
		if call.ChannelID != channelID {
			continue
		}
		summaries = append(summaries, CallSummary{
			Call:      *call,
			Confirmed: len(s.ledger.data.Participants[id]),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Call.CreatedAt.Equal(summaries[j].Call.CreatedAt) {
			return summaries[i].Call.CreatedAt.After(summaries[j].Call.CreatedAt)
		}
		return summaries[i].Call.ID < summaries[j].Call.ID
	})

	if n < len(summaries) {
		summaries = summaries[:n]
	}
	return summaries
}

// Roster returns a copy of the call's confirmed attendees in confirmation
// order.
func (s *CallService) Roster(callID string) ([]string, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	participants, ok := s.ledger.data.Participants[callID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]string(nil), participants...), nil
}
