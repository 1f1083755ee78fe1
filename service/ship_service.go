package service

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"mingle/models"
)

// ZodiacSigns lists the accepted signs for the zodiac compatibility game.
var ZodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// MatchInput carries the observable facts the quick compatibility test
// scores. The caller extracts them from the two member profiles.
type MatchInput struct {
	SameGuild          bool
	CommonRoles        int
	AccountAgeDiffDays int
	SameInitial        bool
}

// MatchResult is the outcome of the quick compatibility test.
type MatchResult struct {
	Percent  int
	Soulmate bool
}

// AnalysisCategories are the axes of the detailed compatibility analysis,
// in display order.
var AnalysisCategories = []string{"Friendship", "Passion", "Trust", "Communication", "Future"}

// AnalysisResult is the outcome of the detailed compatibility analysis.
type AnalysisResult struct {
	// Scores is keyed by AnalysisCategories.
	Scores  map[string]int
	Average int
}

// ShipService owns the named pair records and the pure compatibility
// calculators.
type ShipService struct {
	ledger *Ledger
	rng    randSource
}

// NewShipService creates a new ship service
func NewShipService(ledger *Ledger) *ShipService {
	return &ShipService{
		ledger: ledger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateShip registers a pair under the directional key "a-b". The key
// preserves argument order, so "a-b" and "b-a" are distinct records.
func (s *ShipService) CreateShip(ctx context.Context, personA, personB, createdBy string, now time.Time) (*models.Ship, error) {
	if personA == personB {
		return nil, ErrSelfTarget
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	key := models.ShipKey(personA, personB)
	if _, ok := s.ledger.data.Ships[key]; ok {
		return nil, ErrAlreadyExists
	}

	ship := &models.Ship{
		PersonA:   personA,
		PersonB:   personB,
		CreatedBy: createdBy,
		CreatedAt: now,
	}
	s.ledger.data.Ships[key] = ship
	s.ledger.saveShips(ctx)

	return ship, nil
}

// LikeShip increments the like counter of the pair keyed by argument order.
func (s *ShipService) LikeShip(ctx context.Context, personA, personB string) (int64, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	ship, ok := s.ledger.data.Ships[models.ShipKey(personA, personB)]
	if !ok {
		return 0, ErrNotFound
	}

	ship.Likes++
	s.ledger.saveShips(ctx)

	return ship.Likes, nil
}

// ShipInfo returns the pair record keyed by argument order.
func (s *ShipService) ShipInfo(personA, personB string) (*models.Ship, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	ship, ok := s.ledger.data.Ships[models.ShipKey(personA, personB)]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *ship
	return &copied, nil
}

// ShipsCreatedBy returns the pairs the user registered, sorted by key.
func (s *ShipService) ShipsCreatedBy(userID string) []*models.Ship {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	var keys []string
	for key, ship := range s.ledger.data.Ships {
		if ship.CreatedBy == userID {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	ships := make([]*models.Ship, 0, len(keys))
	for _, key := range keys {
		copied := *s.ledger.data.Ships[key]
		ships = append(ships, &copied)
	}
	return ships
}

// TopShips returns up to n pairs ordered by likes descending. Ties break on
// the pair key so repeated calls produce the same ranking.
func (s *ShipService) TopShips(n int) []*models.Ship {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	type ranked struct {
		key  string
		ship *models.Ship
	}
	all := make([]ranked, 0, len(s.ledger.data.Ships))
	for key, ship := range s.ledger.data.Ships {
		all = append(all, ranked{key: key, ship: ship})
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].ship.Likes != all[j].ship.Likes {
			return all[i].ship.Likes > all[j].ship.Likes
		}
		return all[i].key < all[j].key
	})

	if n > len(all) {
		n = len(all)
	}
	ships := make([]*models.Ship, 0, n)
	for _, r := range all[:n] {
		copied := *r.ship
		ships = append(ships, &copied)
	}
	return ships
}

// AllShips returns every pair record, sorted by key.
func (s *ShipService) AllShips() []*models.Ship {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	keys := make([]string, 0, len(s.ledger.data.Ships))
	for key := range s.ledger.data.Ships {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ships := make([]*models.Ship, 0, len(keys))
	for _, key := range keys {
		copied := *s.ledger.data.Ships[key]
		ships = append(ships, &copied)
	}
	return ships
}

// Match runs the quick compatibility test. The base score is random; small
// bonuses reward shared context; a 1 in 100 roll overrides everything with a
// perfect soulmate score.
func (s *ShipService) Match(in MatchInput) MatchResult {
	base := s.rng.Intn(51) + 40

	if in.SameGuild {
		base += 5
	}
	if in.CommonRoles > 1 {
		base += in.CommonRoles * 2
	}
	if in.AccountAgeDiffDays < 30 && in.AccountAgeDiffDays > -30 {
		base += 3
	}
	if in.SameInitial {
		base += 2
	}

	if base > 100 {
		base = 100
	}
	if base < 0 {
		base = 0
	}

	soulmate := s.rng.Intn(100) == 0
	if soulmate {
		base = 100
	}

	return MatchResult{Percent: base, Soulmate: soulmate}
}

// Analyze runs the detailed compatibility analysis: five independent random
// category scores plus their truncated average.
func (s *ShipService) Analyze() AnalysisResult {
	scores := make(map[string]int, len(AnalysisCategories))
	sum := 0
	for _, cat := range AnalysisCategories {
		v := s.rng.Intn(101)
		scores[cat] = v
		sum += v
	}
	return AnalysisResult{
		Scores:  scores,
		Average: sum / len(AnalysisCategories),
	}
}

// ZodiacCompatibility scores two zodiac signs. Both must name a known sign.
func (s *ShipService) ZodiacCompatibility(sign1, sign2 string) (int, error) {
	if !validSign(sign1) || !validSign(sign2) {
		return 0, ErrInvalidArgument
	}
	return s.rng.Intn(61) + 40, nil
}

func validSign(sign string) bool {
	for _, s := range ZodiacSigns {
		if sign == s {
			return true
		}
	}
	return false
}
