package models

import "time"

// ChatHistory keeps the assistant transcript. SessionID groups messages
// for anonymous sessions, UserID for signed-in ones.
type ChatHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"userId"`
	SessionID string    `gorm:"index" json:"sessionId"`
	Sender    string    `json:"sender"` // user, assistant
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
