package models

import (
	"encoding/json"
	"time"
)

// ActivityLog is the audit trail. Metadata carries free-form context such
// as entity names or upload row counts.
type ActivityLog struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UserID     uint            `gorm:"index" json:"userId"`
	Action     string          `json:"action"` // create, update, delete, upload, login, chat_query
	EntityType string          `json:"entityType"`
	EntityID   uint            `json:"entityId"`
	Metadata   json.RawMessage `gorm:"type:json" json:"metadata,omitempty"`
}
