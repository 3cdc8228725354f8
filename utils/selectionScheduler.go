package utils

import (
	"ecolearner/config"
	"ecolearner/database"
	"ecolearner/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// PurgeStaleSelections deletes cart entries older than the configured
// TTL. Selections are non-binding intent, so sweeping them mutates no
// class capacity and no payment record.
func PurgeStaleSelections(store *database.Store, ttlDays int) {
	cutoff := time.Now().AddDate(0, 0, -ttlDays)

	result := store.Db.Where("created_at < ?", cutoff).Delete(&models.SelectedClass{})
	if result.Error != nil {
		log.Printf("[SELECTION-SCHEDULER] Error purging stale selections: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("[SELECTION-SCHEDULER] Purged %d stale selections", result.RowsAffected)
	}
}

// StartSelectionScheduler runs the stale-selection sweep once a day
func StartSelectionScheduler(store *database.Store, cfg *config.Config) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@daily", func() {
		PurgeStaleSelections(store, cfg.SelectionTTLDays)
	})
	if err != nil {
		log.Printf("[SELECTION-SCHEDULER] Failed to schedule sweep: %v", err)
		return c
	}

	c.Start()
	log.Println("[SELECTION-SCHEDULER] Daily stale-selection sweep scheduled")
	return c
}
