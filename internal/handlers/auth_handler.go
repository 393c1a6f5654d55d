package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/clinic-agenda/internal/httperr"
)

const tokenTTL = 24 * time.Hour

// AuthHandler only issues guest tokens. Real owners authenticate with the
// identity provider, which signs tokens with the same secret and puts the
// owner id in "sub".
type AuthHandler struct {
	secret  string
	guestID string
}

func NewAuthHandler(secret, guestID string) *AuthHandler {
	return &AuthHandler{secret: secret, guestID: guestID}
}

func (h *AuthHandler) Guest(c *gin.Context) {
	token, err := h.generateToken(h.guestID)
	if err != nil {
		httperr.Internal(c, "token_generation_failed", "Could not issue token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"owner_id":   h.guestID,
		"expires_in": int(tokenTTL.Seconds()),
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(ownerID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": ownerID,
		"exp": time.Now().Add(tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.secret))
}
