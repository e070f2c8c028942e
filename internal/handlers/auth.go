package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/agora-forum/agora/internal/database"
	"github.com/agora-forum/agora/internal/handlers/dto"
	"github.com/agora-forum/agora/internal/models"
	"github.com/agora-forum/agora/pkg/auth"
)

type AuthHandler struct {
	store      database.Store
	jwtManager *auth.JWTManager
	blacklist  auth.TokenBlacklist
}

func NewAuthHandler(store database.Store, jwtMgr *auth.JWTManager, blacklist auth.TokenBlacklist) *AuthHandler {
	return &AuthHandler{store: store, jwtManager: jwtMgr, blacklist: blacklist}
}

// Register validates the registration form, stores the new user with a
// lowercased email, and logs them straight in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "An error occurred during registration",
			"fields": validationFields(err),
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot hash password"})
		return
	}

	user := &models.User{
		Email:        strings.ToLower(req.Email),
		Name:         req.Name,
		PasswordHash: string(hash),
	}

	if err := h.store.CreateUser(user); err != nil {
		logrus.WithError(err).Error("register: create user failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "An error occurred during registration"})
		return
	}

	token, err := h.jwtManager.Generate(user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token, "user": formatUser(user)})
}

// Login checks credentials against the stored hash. An unknown email fails
// before any credential verification is attempted.
func (h *AuthHandler) Login(c *gin.Context) {
	// a caller holding a valid, non-revoked session has nothing to prove
	if token, err := auth.ExtractTokenFromHeader(c.Request); err == nil {
		if blacklisted, err := h.blacklist.Contains(c.Request.Context(), token); err == nil && !blacklisted {
			if _, err := h.jwtManager.Verify(token); err == nil {
				c.JSON(http.StatusOK, gin.H{"message": "already authenticated"})
				return
			}
		}
	}

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		if notFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User does not exist"})
			return
		}
		logrus.WithError(err).Error("login: user lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not look up user"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username or password doesn't exist"})
		return
	}

	token, err := h.jwtManager.Generate(user.ID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": formatUser(user)})
}

// Logout blacklists the token until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	rawToken, err := auth.ExtractTokenFromHeader(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exp, err := h.jwtManager.Expiry(rawToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ttl := time.Until(exp)
	if err := h.blacklist.Add(c.Request.Context(), rawToken, ttl); err != nil {
		logrus.WithError(err).Error("logout: token revocation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not revoke token"})
		return
	}

	c.Status(http.StatusOK)
}
