package controllers

import (
	"strconv"

	"hotelrev/constants"
	"hotelrev/dto"
	"hotelrev/response"
	"hotelrev/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

var chatAssistant = services.NewChatAssistant()

func sessionID(c *gin.Context) string {
	if sid, exists := c.Get("sessionId"); exists {
		return sid.(string)
	}
	return c.GetHeader("X-Session-ID")
}

// ChatHandler answers one assistant question over REST.
func ChatHandler(c *gin.Context) {
	var request dto.ChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetUint("userID")
	reply, err := chatAssistant.Answer(c.Request.Context(), userID, sessionID(c), request.Message)
	if err != nil {
		response.ServerError(c)
		return
	}

	_ = services.LogActivity(userID, constants.ActionChatQuery, "chat", 0, nil)

	response.Success(c, dto.ChatResponse{Reply: reply})
}

// GetChatHistoryHandler returns the recent transcript of the user or
// session.
func GetChatHistoryHandler(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	history, err := services.GetChatHistory(c.GetUint("userID"), sessionID(c), limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, history)
}

// InitChatSocket wires the assistant onto the websocket. Each incoming
// frame is one question; the reply goes back on the same session only.
func InitChatSocket(m *melody.Melody) {
	m.HandleMessage(func(s *melody.Session, msg []byte) {
		sid := s.Request.Header.Get("X-Session-ID")

		var userID uint
		if token := s.Request.URL.Query().Get("token"); token != "" {
			if id, err := services.GetIDFromToken(token); err == nil {
				userID = id
			}
		}

		reply, err := chatAssistant.Answer(s.Request.Context(), userID, sid, string(msg))
		if err != nil {
			_ = s.Write([]byte("Something went wrong. Please try again."))
			return
		}
		_ = s.Write([]byte(reply))
	})
}
