package services

import (
	"encoding/json"

	"hotelrev/config"
	"hotelrev/models"
)

// LogActivity appends one audit entry. Logging failures are returned
// but callers generally treat them as non-fatal.
func LogActivity(userID uint, action, entityType string, entityID uint, metadata map[string]interface{}) error {
	entry := models.ActivityLog{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}

	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		entry.Metadata = raw
	}

	return config.DB.Create(&entry).Error
}

// RecentActivity returns the newest audit entries, optionally filtered
// by user.
func RecentActivity(userID uint, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := config.DB.Model(&models.ActivityLog{})
	if userID > 0 {
		query = query.Where("user_id = ?", userID)
	}

	var entries []models.ActivityLog
	err := query.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
