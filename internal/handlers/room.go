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

const recentTopicCount = 5

type RoomHandler struct {
	store database.Store
}

func NewRoomHandler(store database.Store) *RoomHandler {
	return &RoomHandler{store: store}
}

// ListRooms is the home feed: rooms matching q across topic name, room name
// and description, the most recent topics, and a topic-only message feed.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	q := c.Query("q")

	rooms, err := h.store.SearchRooms(q)
	if err != nil {
		logrus.WithError(err).Error("home: room search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search rooms"})
		return
	}

	topics, err := h.store.RecentTopics(recentTopicCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load topics"})
		return
	}

	// looser than the room search on purpose: the activity panel follows
	// the topic name only
	messages, err := h.store.TopicMessages(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recent messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rooms":           formatRooms(rooms),
		"room_count":      len(rooms),
		"topics":          formatTopics(topics),
		"recent_messages": formatMessages(messages),
	})
}

// GetRoom returns the room, its messages newest first, and its participants.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.store.GetRoom(c.Param("id"))
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load room"})
		return
	}

	messages, err := h.store.RoomMessages(room.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"room":         formatRoom(room),
		"messages":     formatMessages(messages),
		"participants": formatUsers(room.Participants),
	})
}

// CreateRoom makes the caller host of a new room, resolving the topic by
// exact name via get-or-create.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "fields": validationFields(err)})
		return
	}

	topic, _, err := h.store.GetOrCreateTopic(req.Topic)
	if err != nil {
		logrus.WithError(err).Error("create room: topic resolution failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve topic"})
		return
	}

	room := &models.Room{
		HostID:      &userID,
		TopicID:     &topic.ID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.store.CreateRoom(room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}

	if full, err := h.store.GetRoom(room.ID.String()); err == nil {
		room = full
	}

	c.JSON(http.StatusCreated, formatRoom(room))
}

// EditRoom returns the pre-filled edit form payload. Host only.
func (h *RoomHandler) EditRoom(c *gin.Context) {
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

	if room.HostID == nil || *room.HostID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed here"})
		return
	}

	topics, err := h.store.SearchTopics("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load topics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": formatRoom(room), "topics": formatTopics(topics)})
}

// UpdateRoom overwrites name, description, and topic. The host check runs
// before the body is even parsed.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
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

	if room.HostID == nil || *room.HostID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed here"})
		return
	}

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "fields": validationFields(err)})
		return
	}

	topic, _, err := h.store.GetOrCreateTopic(req.Topic)
	if err != nil {
		logrus.WithError(err).Error("update room: topic resolution failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve topic"})
		return
	}

	room.TopicID = &topic.ID
	room.Topic = topic
	room.Name = req.Name
	room.Description = req.Description

	if err := h.store.UpdateRoom(room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update room"})
		return
	}

	c.JSON(http.StatusOK, formatRoom(room))
}

// DeleteRoom removes the room and every message in it. Host only.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
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

	if room.HostID == nil || *room.HostID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not allowed here"})
		return
	}

	if err := h.store.DeleteRoom(room.ID.String()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "room deleted"})
}

func formatRoom(room *models.Room) gin.H {
	resp := gin.H{
		"id":           room.ID,
		"name":         room.Name,
		"description":  room.Description,
		"created_at":   room.CreatedAt,
		"updated_at":   room.UpdatedAt,
		"participants": formatUsers(room.Participants),
	}
	if room.Host != nil {
		resp["host"] = formatUser(room.Host)
	}
	if room.Topic != nil {
		resp["topic"] = formatTopic(room.Topic)
	}
	return resp
}

func formatRooms(rooms []models.Room) []gin.H {
	out := make([]gin.H, len(rooms))
	for i := range rooms {
		out[i] = formatRoom(&rooms[i])
	}
	return out
}
