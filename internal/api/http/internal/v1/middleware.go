package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/shared-city/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userId"
	tokenCtx            = "accessToken"
)

func (h *Handler) userIdentityMiddleware(c *gin.Context) {
	token, err := parseBearerToken(c.GetHeader(authorizationHeader))
	if err != nil {
		errorResponseWithStatus(c, http.StatusUnauthorized, UnauthorizedCode)
		return
	}

	id, err := h.tokenManager.Parse(token)
	if err != nil {
		if !errors.Is(err, jwt.ErrTokenExpired) {
			logger.Error("parse auth header failed", zap.Error(err))
		}
		errorResponseWithStatus(c, http.StatusUnauthorized, UnauthorizedCode)
		return
	}

	revoked, err := h.services.Users.IsRevoked(c.Request.Context(), token)
	if err != nil {
		logger.Error("check revoked token failed", zap.Error(err))
		errorResponseWithStatus(c, http.StatusServiceUnavailable, StoreUnavailableCode)
		return
	}
	if revoked {
		errorResponseWithStatus(c, http.StatusUnauthorized, UnauthorizedCode)
		return
	}

	c.Set(userCtx, id)
	c.Set(tokenCtx, token)
}

func parseBearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("empty auth header")
	}

	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 || headerParts[0] != "Bearer" {
		return "", errors.New("invalid auth header")
	}

	if len(headerParts[1]) == 0 {
		return "", errors.New("token is empty")
	}

	return headerParts[1], nil
}

func (h *Handler) getUserUUID(c *gin.Context) (uuid.UUID, error) {
	id, ok := c.Get(userCtx)
	if !ok {
		return uuid.Nil, errors.New("user id not found")
	}

	return uuid.Parse(id.(string))
}
