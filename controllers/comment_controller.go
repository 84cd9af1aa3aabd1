package controllers

import (
	"hotelrev/config"
	"hotelrev/dto"
	"hotelrev/errors"
	"hotelrev/models"
	"hotelrev/response"
	"hotelrev/validator"

	"github.com/gin-gonic/gin"
)

// GetComments lists comments for one entity, oldest first.
func GetComments(c *gin.Context) {
	entityType := c.Query("entityType")
	entityID := c.Query("entityId")
	if entityType == "" || entityID == "" {
		response.BadRequest(c, "entityType and entityId are required")
		return
	}

	var comments []models.Comment
	err := config.DB.Preload("Author").
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at").
		Find(&comments).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, comments)
}

// CreateComment attaches a comment to an entity, optionally threaded
// under a parent.
func CreateComment(c *gin.Context) {
	var request dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	comment := models.Comment{
		Content:    request.Content,
		EntityType: request.EntityType,
		EntityID:   request.EntityID,
		ParentID:   request.ParentID,
		AuthorID:   c.GetUint("userID"),
	}

	if err := validator.ValidateComment(&comment); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	if err := config.DB.Create(&comment).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, comment)
}

// ResolveComment marks a comment thread as handled.
func ResolveComment(c *gin.Context) {
	var comment models.Comment
	if err := config.DB.First(&comment, c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	comment.IsResolved = true
	if err := config.DB.Save(&comment).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, comment)
}
