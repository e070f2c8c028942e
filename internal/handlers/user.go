package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agora-forum/agora/internal/database"
	"github.com/agora-forum/agora/internal/handlers/dto"
	"github.com/agora-forum/agora/internal/middleware"
	"github.com/agora-forum/agora/internal/models"
)

type UserHandler struct {
	store database.Store
}

func NewUserHandler(store database.Store) *UserHandler {
	return &UserHandler{store: store}
}

// Profile returns a user together with the rooms they host, the messages
// they authored, and the full topic list.
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.store.GetUser(c.Param("id"))
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	rooms, err := h.store.GetUserRooms(user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load rooms"})
		return
	}

	messages, err := h.store.GetUserMessages(user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}

	topics, err := h.store.SearchTopics("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load topics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":     formatUser(user),
		"rooms":    formatRooms(rooms),
		"messages": formatMessages(messages),
		"topics":   formatTopics(topics),
	})
}

// EditProfile returns the caller's current profile as the pre-filled form
// payload.
func (h *UserHandler) EditProfile(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.store.GetUser(userID.String())
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": formatUser(user)})
}

// UpdateProfile persists name, email, bio, and avatar changes for the
// caller. Fields present in the payload are overwritten, blanks included;
// absent fields keep their value.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "fields": validationFields(err)})
		return
	}

	user, err := h.store.GetUser(userID.String())
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != "" {
		user.Email = strings.ToLower(*req.Email)
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}

	if err := h.store.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": formatUser(user)})
}

func formatUser(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"name":       user.Name,
		"bio":        user.Bio,
		"avatar_url": user.AvatarURL,
	}
}

func formatUsers(users []models.User) []gin.H {
	out := make([]gin.H, len(users))
	for i := range users {
		out[i] = formatUser(&users[i])
	}
	return out
}
