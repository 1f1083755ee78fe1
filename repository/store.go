package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mingle/database"
	"mingle/models"

	"github.com/jackc/pgx/v5"
)

// Blob names under which the document collections are stored.
const (
	blobInventory    = "inventory"
	blobShips        = "ships"
	blobMarriages    = "marriages"
	blobCalls        = "calls"
	blobParticipants = "participants"
)

// Store mirrors the in-memory collections to Postgres. Loads reconstruct
// everything at startup; saves rewrite a whole collection per call. The
// store never diffs: the in-memory snapshot is the source of truth.
type Store struct {
	db            *database.DB
	legacyDataDir string
}

// NewStore creates a new store
func NewStore(db *database.DB, legacyDataDir string) *Store {
	return &Store{db: db, legacyDataDir: legacyDataDir}
}

// Load reconstructs every collection from the database. When the store is
// empty it attempts a one-time import of the legacy flat-file snapshots and,
// on success, persists the imported state immediately.
func (s *Store) Load(ctx context.Context) (*models.Snapshot, error) {
	snap := models.NewSnapshot()

	rows, err := s.db.Query(ctx, `SELECT user_id, amount FROM balances`)
	if err != nil {
		return nil, fmt.Errorf("failed to load balances: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var userID string
		var amount int64
		if err := rows.Scan(&userID, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan balance: %w", err)
		}
		snap.Balances[userID] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balances: %w", err)
	}

	if err := s.loadDailyCooldowns(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.loadDivorceCooldowns(ctx, snap); err != nil {
		return nil, err
	}
	if err := s.loadBlobs(ctx, snap); err != nil {
		return nil, err
	}

	// One-time migration path from the old flat-file era.
	if len(snap.Balances) == 0 {
		if imported := importLegacySnapshot(s.legacyDataDir, snap); imported {
			if err := s.SaveAll(ctx, snap); err != nil {
				return nil, fmt.Errorf("failed to persist imported legacy data: %w", err)
			}
		}
	}

	return snap, nil
}

func (s *Store) loadDailyCooldowns(ctx context.Context, snap *models.Snapshot) error {
	rows, err := s.db.Query(ctx, `SELECT user_id, claim_date FROM daily_cooldowns`)
	if err != nil {
		return fmt.Errorf("failed to load daily cooldowns: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var userID string
		var claimDate time.Time
		if err := rows.Scan(&userID, &claimDate); err != nil {
			return fmt.Errorf("failed to scan daily cooldown: %w", err)
		}
		snap.DailyCooldowns[userID] = claimDate
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate daily cooldowns: %w", err)
	}
	return nil
}

func (s *Store) loadDivorceCooldowns(ctx context.Context, snap *models.Snapshot) error {
	rows, err := s.db.Query(ctx, `SELECT user_id, divorced_at FROM divorce_cooldowns`)
	if err != nil {
		return fmt.Errorf("failed to load divorce cooldowns: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var userID string
		var divorcedAt *time.Time
		if err := rows.Scan(&userID, &divorcedAt); err != nil {
			return fmt.Errorf("failed to scan divorce cooldown: %w", err)
		}
		if divorcedAt != nil {
			snap.DivorceCooldowns[userID] = *divorcedAt
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate divorce cooldowns: %w", err)
	}
	return nil
}

func (s *Store) loadBlobs(ctx context.Context, snap *models.Snapshot) error {
	rows, err := s.db.Query(ctx, `SELECT name, payload FROM named_blobs`)
	if err != nil {
		return fmt.Errorf("failed to load collection documents: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var payload []byte
		if err := rows.Scan(&name, &payload); err != nil {
			return fmt.Errorf("failed to scan collection document: %w", err)
		}

		var unmarshalErr error
		switch name {
		case blobInventory:
			unmarshalErr = json.Unmarshal(payload, &snap.Inventory)
		case blobShips:
			unmarshalErr = json.Unmarshal(payload, &snap.Ships)
		case blobMarriages:
			unmarshalErr = json.Unmarshal(payload, &snap.Marriages)
		case blobCalls:
			unmarshalErr = json.Unmarshal(payload, &snap.Calls)
		case blobParticipants:
			unmarshalErr = json.Unmarshal(payload, &snap.Participants)
		}
		if unmarshalErr != nil {
			return fmt.Errorf("failed to decode %q document: %w", name, unmarshalErr)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate collection documents: %w", err)
	}
	return nil
}

// SaveBalances upserts every balance record.
func (s *Store) SaveBalances(ctx context.Context, balances map[string]int64) error {
	return s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for userID, amount := range balances {
			_, err := tx.Exec(ctx, `
				INSERT INTO balances (user_id, amount)
				VALUES ($1, $2)
				ON CONFLICT (user_id) DO UPDATE SET amount = EXCLUDED.amount
			`, userID, amount)
			if err != nil {
				return fmt.Errorf("failed to upsert balance for user %s: %w", userID, err)
			}
		}
		return nil
	})
}

// SaveDailyCooldowns upserts every daily-claim record.
func (s *Store) SaveDailyCooldowns(ctx context.Context, cooldowns map[string]time.Time) error {
	return s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for userID, claimDate := range cooldowns {
			_, err := tx.Exec(ctx, `
				INSERT INTO daily_cooldowns (user_id, claim_date)
				VALUES ($1, $2)
				ON CONFLICT (user_id) DO UPDATE SET claim_date = EXCLUDED.claim_date
			`, userID, claimDate)
			if err != nil {
				return fmt.Errorf("failed to upsert daily cooldown for user %s: %w", userID, err)
			}
		}
		return nil
	})
}

// SaveDivorceCooldowns upserts every divorce-cooldown record.
func (s *Store) SaveDivorceCooldowns(ctx context.Context, cooldowns map[string]time.Time) error {
	return s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for userID, divorcedAt := range cooldowns {
			_, err := tx.Exec(ctx, `
				INSERT INTO divorce_cooldowns (user_id, divorced_at)
				VALUES ($1, $2)
				ON CONFLICT (user_id) DO UPDATE SET divorced_at = EXCLUDED.divorced_at
			`, userID, divorcedAt)
			if err != nil {
				return fmt.Errorf("failed to upsert divorce cooldown for user %s: %w", userID, err)
			}
		}
		return nil
	})
}

// saveBlob rewrites one collection document. Record deletions inside a
// collection take effect here because the whole document is replaced.
func (s *Store) saveBlob(ctx context.Context, name string, collection any) error {
	payload, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode %q document: %w", name, err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO named_blobs (name, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`, name, payload)
	if err != nil {
		return fmt.Errorf("failed to upsert %q document: %w", name, err)
	}
	return nil
}

// SaveInventory rewrites the gift inventory document.
func (s *Store) SaveInventory(ctx context.Context, inventory map[string][]models.Gift) error {
	return s.saveBlob(ctx, blobInventory, inventory)
}

// SaveShips rewrites the ships document.
func (s *Store) SaveShips(ctx context.Context, ships map[string]*models.Ship) error {
	return s.saveBlob(ctx, blobShips, ships)
}

// SaveMarriages rewrites the marriages document.
func (s *Store) SaveMarriages(ctx context.Context, marriages map[string]*models.Marriage) error {
	return s.saveBlob(ctx, blobMarriages, marriages)
}

// SaveCalls rewrites the calls document.
func (s *Store) SaveCalls(ctx context.Context, calls map[string]*models.Call) error {
	return s.saveBlob(ctx, blobCalls, calls)
}

// SaveParticipants rewrites the call rosters document.
func (s *Store) SaveParticipants(ctx context.Context, participants map[string][]string) error {
	return s.saveBlob(ctx, blobParticipants, participants)
}

// SaveAll persists every collection. Used after a legacy import.
func (s *Store) SaveAll(ctx context.Context, snap *models.Snapshot) error {
	if err := s.SaveBalances(ctx, snap.Balances); err != nil {
		return err
	}
	if err := s.SaveDailyCooldowns(ctx, snap.DailyCooldowns); err != nil {
		return err
	}
	if err := s.SaveDivorceCooldowns(ctx, snap.DivorceCooldowns); err != nil {
		return err
	}
	if err := s.SaveInventory(ctx, snap.Inventory); err != nil {
		return err
	}
	if err := s.SaveShips(ctx, snap.Ships); err != nil {
		return err
	}
	if err := s.SaveMarriages(ctx, snap.Marriages); err != nil {
		return err
	}
	if err := s.SaveCalls(ctx, snap.Calls); err != nil {
		return err
	}
	if err := s.SaveParticipants(ctx, snap.Participants); err != nil {
		return err
	}
	return nil
}
