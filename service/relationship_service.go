package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mingle/config"
	"mingle/models"
)

// CatalogItem is one purchasable gift in the shop.
type CatalogItem struct {
	Name  string
	Price int64
}

// giftCatalog is the fixed shop inventory, in display order.
var giftCatalog = []CatalogItem{
	{Name: "🌹 Rose", Price: 50},
	{Name: "🍫 Chocolate", Price: 75},
	{Name: "🧸 Teddy Bear", Price: 100},
	{Name: "💍 Ring", Price: 500},
	{Name: "💐 Bouquet", Price: 150},
	{Name: "🎂 Cake", Price: 200},
	{Name: "✉️ Letter", Price: 30},
	{Name: "🎫 Cinema", Price: 120},
	{Name: "🍷 Dinner", Price: 300},
	{Name: "💎 Necklace", Price: 800},
}

// RelationshipService owns marriages, the honeymoon window, anniversaries and
// the gift shop.
type RelationshipService struct {
	ledger *Ledger
}

// NewRelationshipService creates a new relationship service
func NewRelationshipService(ledger *Ledger) *RelationshipService {
	return &RelationshipService{ledger: ledger}
}

// Propose deducts the proposal cost immediately. The only pairing rejected is
// a pair already married to each other; either party being married to someone
// else does not block a new proposal.
func (s *RelationshipService) Propose(ctx context.Context, proposerID, targetID string) error {
	if proposerID == targetID {
		return ErrSelfTarget
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	for _, m := range s.ledger.data.Marriages {
		if m.Involves(proposerID) && m.Involves(targetID) {
			return ErrAlreadyMarried
		}
	}

	cost := config.Get().ProposalCost
	if s.ledger.data.Balances[proposerID] < cost {
		return ErrInsufficientFunds
	}
	s.ledger.data.Balances[proposerID] -= cost
	s.ledger.saveBalances(ctx)

	return nil
}

// Accept records the marriage and pays the bonus to both parties. No check
// ties the acceptance to an outstanding proposal; the proposal fee was already
// collected and acceptance is taken at face value.
func (s *RelationshipService) Accept(ctx context.Context, proposerID, accepterID string, now time.Time) (*models.Marriage, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	marriage := &models.Marriage{
		PersonA:   proposerID,
		PersonB:   accepterID,
		MarriedAt: now,
		Honeymoon: true,
	}
	s.ledger.data.Marriages[models.MarriageID(proposerID, accepterID, now)] = marriage

	bonus := config.Get().MarriageBonus
	s.ledger.data.Balances[proposerID] += bonus
	s.ledger.data.Balances[accepterID] += bonus

	s.ledger.saveMarriages(ctx)
	s.ledger.saveBalances(ctx)

	copied := *marriage
	return &copied, nil
}

// Divorce ends the caller's marriage. Checks run in order: married at all,
// cooldown elapsed, fee covered. The fee is deducted, the cooldown restarts
// and the record is deleted.
func (s *RelationshipService) Divorce(ctx context.Context, userID string, now time.Time) (*models.DivorceResult, error) {
	cfg := config.Get()

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	marriageID, _, err := s.findMarriage(userID)
	if err != nil {
		return nil, err
	}

	if divorcedAt, ok := s.ledger.data.DivorceCooldowns[userID]; ok {
		if now.Sub(divorcedAt) < cfg.DivorceCooldown {
			return nil, ErrCooldownActive
		}
	}

	if s.ledger.data.Balances[userID] < cfg.DivorceCost {
		return nil, ErrInsufficientFunds
	}

	s.ledger.data.Balances[userID] -= cfg.DivorceCost
	s.ledger.data.DivorceCooldowns[userID] = now
	delete(s.ledger.data.Marriages, marriageID)

	s.ledger.saveBalances(ctx)
	s.ledger.saveDivorceCooldowns(ctx)
	s.ledger.saveMarriages(ctx)

	return &models.DivorceResult{
		Cost:       cfg.DivorceCost,
		NewBalance: s.ledger.data.Balances[userID],
	}, nil
}

// MarriageOf returns the caller's marriage record.
func (s *RelationshipService) MarriageOf(userID string) (*models.Marriage, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	_, marriage, err := s.findMarriage(userID)
	if err != nil {
		return nil, err
	}

	copied := *marriage
	copied.Gifts = append([]string(nil), marriage.Gifts...)
	return &copied, nil
}

// CelebrateAnniversary grants the anniversary bonus to both spouses. It only
// fires on the wedding's month and day, once per marriage year.
func (s *RelationshipService) CelebrateAnniversary(ctx context.Context, userID string, now time.Time) (*models.AnniversaryResult, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	_, marriage, err := s.findMarriage(userID)
	if err != nil {
		return nil, err
	}

	if now.Month() != marriage.MarriedAt.Month() || now.Day() != marriage.MarriedAt.Day() {
		return nil, ErrNotAnniversary
	}

	years := now.Year() - marriage.MarriedAt.Year()
	if years <= marriage.AnniversariesCelebrated {
		return nil, ErrAlreadyCelebrated
	}

	marriage.AnniversariesCelebrated = years

	bonus := int64(500 * years)
	s.ledger.data.Balances[userID] += bonus
	s.ledger.data.Balances[marriage.SpouseOf(userID)] += bonus

	s.ledger.saveMarriages(ctx)
	s.ledger.saveBalances(ctx)

	return &models.AnniversaryResult{Years: years, Bonus: bonus}, nil
}

// HoneymoonStatus reports the honeymoon window. Expiry is lazy: the flag is
// flipped and persisted the first time anyone asks after the window closed.
func (s *RelationshipService) HoneymoonStatus(ctx context.Context, userID string, now time.Time) (*models.HoneymoonStatus, error) {
	duration := config.Get().HoneymoonDuration

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	_, marriage, err := s.findMarriage(userID)
	if err != nil {
		return nil, err
	}

	if !marriage.Honeymoon {
		return nil, ErrHoneymoonOver
	}

	elapsed := now.Sub(marriage.MarriedAt)
	if elapsed > duration {
		marriage.Honeymoon = false
		s.ledger.saveMarriages(ctx)
		return nil, ErrHoneymoonOver
	}

	days := int(duration.Hours()/24) - int(elapsed.Hours()/24)
	return &models.HoneymoonStatus{
		Active:        true,
		DaysRemaining: days,
		SpouseID:      marriage.SpouseOf(userID),
	}, nil
}

// GiftSpouse spends the fixed gift cost and appends a free-text entry to the
// marriage's gift log. Returns the spouse's ID for the confirmation message.
func (s *RelationshipService) GiftSpouse(ctx context.Context, userID, userName, gift string) (string, error) {
	cost := config.Get().SpouseGiftCost

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	_, marriage, err := s.findMarriage(userID)
	if err != nil {
		return "", err
	}

	if s.ledger.data.Balances[userID] < cost {
		return "", ErrInsufficientFunds
	}
	s.ledger.data.Balances[userID] -= cost

	marriage.Gifts = append(marriage.Gifts, fmt.Sprintf("%s gave: %s", userName, gift))

	s.ledger.saveBalances(ctx)
	s.ledger.saveMarriages(ctx)

	return marriage.SpouseOf(userID), nil
}

// GiftCatalog returns the shop inventory in display order.
func (s *RelationshipService) GiftCatalog() []CatalogItem {
	return giftCatalog
}

// BuyGift debits the buyer for a catalog item and delivers it to the
// recipient's inventory. The recipient does not have to be a spouse.
func (s *RelationshipService) BuyGift(ctx context.Context, buyerID, buyerName, giftName, recipientID string, now time.Time) error {
	var price int64 = -1
	for _, item := range giftCatalog {
		if item.Name == giftName {
			price = item.Price
			break
		}
	}
	if price < 0 {
		return ErrNotFound
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	if s.ledger.data.Balances[buyerID] < price {
		return ErrInsufficientFunds
	}
	s.ledger.data.Balances[buyerID] -= price

	s.ledger.data.Inventory[recipientID] = append(s.ledger.data.Inventory[recipientID], models.Gift{
		Name:    giftName,
		From:    buyerName,
		GivenAt: now,
	})

	s.ledger.saveBalances(ctx)
	s.ledger.saveInventory(ctx)

	return nil
}

// GiftsFor returns the user's received gifts in delivery order.
func (s *RelationshipService) GiftsFor(userID string) []models.Gift {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	return append([]models.Gift(nil), s.ledger.data.Inventory[userID]...)
}

// findMarriage locates the marriage involving the user. Keys are scanned in
// sorted order so a user caught in multiple records always resolves to the
// same one. Caller holds the ledger lock.
func (s *RelationshipService) findMarriage(userID string) (string, *models.Marriage, error) {
	ids := make([]string, 0, len(s.ledger.data.Marriages))
	for id := range s.ledger.data.Marriages {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if m := s.ledger.data.Marriages[id]; m.Involves(userID) {
			return id, m, nil
		}
	}
	return "", nil, ErrNotMarried
}
