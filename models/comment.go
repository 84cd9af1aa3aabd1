package models

import "time"

// Comment is attached to a hotel, event, forecast or task and may be a
// threaded reply to another comment.
type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	EntityType string    `gorm:"index:idx_comment_entity" json:"entityType"`
	EntityID   uint      `gorm:"index:idx_comment_entity" json:"entityId"`
	ParentID   *uint     `json:"parentId,omitempty"`
	AuthorID   uint      `gorm:"not null" json:"authorId"`
	Author     User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	IsResolved bool      `gorm:"default:false" json:"isResolved"`
}
