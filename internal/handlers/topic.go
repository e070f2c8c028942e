package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agora-forum/agora/internal/database"
	"github.com/agora-forum/agora/internal/models"
)

type TopicHandler struct {
	store database.Store
}

func NewTopicHandler(store database.Store) *TopicHandler {
	return &TopicHandler{store: store}
}

// ListTopics filters topics by a case-insensitive name substring; an empty
// q returns them all.
func (h *TopicHandler) ListTopics(c *gin.Context) {
	topics, err := h.store.SearchTopics(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load topics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": formatTopics(topics)})
}

func formatTopic(topic *models.Topic) gin.H {
	return gin.H{"id": topic.ID, "name": topic.Name}
}

func formatTopics(topics []models.Topic) []gin.H {
	out := make([]gin.H, len(topics))
	for i := range topics {
		out[i] = formatTopic(&topics[i])
	}
	return out
}
