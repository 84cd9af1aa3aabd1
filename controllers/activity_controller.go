package controllers

import (
	"strconv"

	"hotelrev/response"
	"hotelrev/services"

	"github.com/gin-gonic/gin"
)

// GetRecentActivity returns the newest audit entries. Admins see the
// whole feed; other roles see their own actions.
func GetRecentActivity(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	userID := c.GetUint("userID")
	if role, _ := c.Get("userRole"); role == "admin" {
		userID = 0
	}

	entries, err := services.RecentActivity(userID, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, entries)
}
