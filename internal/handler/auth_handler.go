package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/safewalk/safewalk-backend-go/internal/config"
	"github.com/safewalk/safewalk-backend-go/pkg/response"
)

// LoginRequest is the admin login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler issues JWT tokens for the admin surface
type AuthHandler struct {
	cfg      *config.Config
	passHash []byte // pre-hashed admin credential from ADMIN_PASS_HASH
}

// NewAuthHandler creates an auth handler. The admin credential arrives as a
// bcrypt hash, never as plaintext; with no hash configured, login is disabled.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	h := &AuthHandler{cfg: cfg}
	if cfg.AdminPassHash != "" {
		h.passHash = []byte(cfg.AdminPassHash)
	}
	return h
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username and password are required")
		return
	}

	if h.passHash == nil {
		response.Error(c, http.StatusServiceUnavailable, "admin login is not configured")
		return
	}

	if req.Username != h.cfg.AdminUser ||
		bcrypt.CompareHashAndPassword(h.passHash, []byte(req.Password)) != nil {
		response.Error(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	claims := jwt.RegisteredClaims{
		Subject:   req.Username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		Issuer:    "safewalk-backend",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		response.InternalError(c, "failed to sign token")
		return
	}

	response.Success(c, gin.H{
		"token":    signed,
		"username": req.Username,
	})
}
