package repository

import (
	"encoding/json"
	"os"
	"path/filepath"

	"mingle/models"

	log "github.com/sirupsen/logrus"
)

// importLegacySnapshot populates snap from the flat JSON files the previous
// generation of the bot wrote next to its working directory. Every file is
// optional; a file that fails to parse is logged and skipped, leaving that
// collection empty. Returns true if at least one file was imported.
func importLegacySnapshot(dir string, snap *models.Snapshot) bool {
	imported := false

	if readLegacyFile(filepath.Join(dir, "economy.json"), &snap.Balances) {
		imported = true
	}
	if readLegacyFile(filepath.Join(dir, "inventory.json"), &snap.Inventory) {
		imported = true
	}
	if readLegacyFile(filepath.Join(dir, "ships.json"), &snap.Ships) {
		imported = true
	}
	if readLegacyFile(filepath.Join(dir, "marriages.json"), &snap.Marriages) {
		imported = true
	}

	// The old bot also wrote anniversary.json and ship_history.json, but
	// neither has a live collection anymore: anniversary counts moved onto
	// the marriage record and ship history was write-only. Parse them for
	// tolerance and drop the contents.
	var discarded map[string]any
	if readLegacyFile(filepath.Join(dir, "anniversary.json"), &discarded) {
		log.Infof("Ignoring obsolete legacy file anniversary.json (%d entries)", len(discarded))
	}
	discarded = nil
	if readLegacyFile(filepath.Join(dir, "ship_history.json"), &discarded) {
		log.Infof("Ignoring obsolete legacy file ship_history.json (%d entries)", len(discarded))
	}

	// calls.json bundles the call records and their rosters in one document.
	var callsFile struct {
		Calls        map[string]*models.Call `json:"calls"`
		Participants map[string][]string     `json:"participants"`
	}
	if readLegacyFile(filepath.Join(dir, "calls.json"), &callsFile) {
		if callsFile.Calls != nil {
			snap.Calls = callsFile.Calls
		}
		if callsFile.Participants != nil {
			snap.Participants = callsFile.Participants
		}
		imported = true
	}

	if imported {
		log.WithFields(log.Fields{
			"balances":  len(snap.Balances),
			"ships":     len(snap.Ships),
			"marriages": len(snap.Marriages),
			"calls":     len(snap.Calls),
		}).Info("Imported legacy flat-file snapshots")
	}

	return imported
}

// readLegacyFile reads one legacy JSON document into dst. A missing file is
// not an error; a corrupt file is logged and treated as absent.
func readLegacyFile(path string, dst any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("Failed to read legacy file %s: %v", path, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		log.Warnf("Failed to parse legacy file %s, leaving collection empty: %v", path, err)
		return false
	}

	return true
}
