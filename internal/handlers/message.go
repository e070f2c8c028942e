package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/agora-forum/agora/internal/database"
	"github.com/agora-forum/agora/internal/handlers/dto"
	"github.com/agora-forum/agora/internal/middleware"
	"github.com/agora-forum/agora/internal/models"
)

type MessageHandler struct {
	store database.Store
}

func NewMessageHandler(store database.Store) *MessageHandler {
	return &MessageHandler{store: store}
}

// PostMessage appends a message to the room and joins the author to its
// participants. The join is idempotent, so posting twice is fine.
func (h *MessageHandler) PostMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	room, err := h.store.GetRoom(c.Param("id"))
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load room"})
		return
	}

	var req dto.MessagePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "fields": validationFields(err)})
		return
	}

	msg := &models.Message{
		RoomID: room.ID,
		UserID: userID,
		Body:   req.Body,
	}

	if err := h.store.CreateMessage(msg); err != nil {
		logrus.WithError(err).Error("post message: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save message"})
		return
	}

	if err := h.store.AddParticipant(room.ID.String(), userID.String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join room"})
		return
	}

	if full, err := h.store.GetMessage(msg.ID.String()); err == nil {
		msg = full
	}

	c.JSON(http.StatusCreated, formatMessage(msg))
}

// DeleteMessage removes a message. Author only.
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	msg, err := h.store.GetMessage(c.Param("id"))
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load message"})
		return
	}

	if msg.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed here"})
		return
	}

	if err := h.store.DeleteMessage(msg.ID.String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}

// Activity returns every message, most recent first.
func (h *MessageHandler) Activity(c *gin.Context) {
	messages, err := h.store.AllMessages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": formatMessages(messages)})
}

func formatMessage(msg *models.Message) gin.H {
	resp := gin.H{
		"id":         msg.ID,
		"room_id":    msg.RoomID,
		"user_id":    msg.UserID,
		"body":       msg.Body,
		"created_at": msg.CreatedAt,
		"updated_at": msg.UpdatedAt,
	}
	if msg.User.ID != uuid.Nil {
		resp["user"] = formatUser(&msg.User)
	}
	if msg.Room.ID != uuid.Nil {
		resp["room"] = gin.H{"id": msg.Room.ID, "name": msg.Room.Name}
	}
	return resp
}

func formatMessages(messages []models.Message) []gin.H {
	out := make([]gin.H, len(messages))
	for i := range messages {
		out[i] = formatMessage(&messages[i])
	}
	return out
}
