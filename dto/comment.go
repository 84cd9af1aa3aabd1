package dto

type CreateCommentRequest struct {
	Content    string `json:"content" binding:"required"`
	EntityType string `json:"entityType" binding:"required"` // hotel, event, forecast, task
	EntityID   uint   `json:"entityId" binding:"required"`
	ParentID   *uint  `json:"parentId"`
}
