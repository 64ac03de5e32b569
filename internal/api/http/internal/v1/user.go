package v1

import (
	"errors"
	"net/http"

	"github.com/shared-city/backend/internal/domain"
	"github.com/shared-city/backend/internal/service"
	"github.com/shared-city/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) initUsersRoutes(api *gin.RouterGroup) {
	users := api.Group("/user")
	{
		users.POST("/code", h.userSendCode)
		users.POST("/login", h.userLogin)
		users.POST("/logout", h.userIdentityMiddleware, h.userLogout)
		users.GET("/me", h.userIdentityMiddleware, h.userMe)
	}
}

type userSendCodeRequest struct {
	Phone string `json:"phone" form:"phone" binding:"required,phonenumber"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// @Summary Send verification code
// @Tags Users
// @Description Issues a one-time login code for the phone, replacing any pending one
// @ModuleID userSendCode
// @Accept  json
// @Produce  json
// @Param input body userSendCodeRequest true "phone"
// @Success 200 {object} messageResponse
// @Failure 400 {object} ErrorStruct
// @Failure 503 {object} ErrorStruct
// @Router /user/code [post]
func (h *Handler) userSendCode(c *gin.Context) {
	var req userSendCodeRequest
	if err := c.ShouldBind(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	if err := h.services.Users.IssueCode(c.Request.Context(), req.Phone); err != nil {
		logger.Error("issue verification code failed", zap.Error(err))
		switch {
		case errors.Is(err, service.ErrCodeDelivery):
			errorResponseWithStatus(c, http.StatusBadGateway, VerificationCodeDeliveryCode)
		case errors.Is(err, service.ErrStoreUnavailable):
			errorResponseWithStatus(c, http.StatusServiceUnavailable, StoreUnavailableCode)
		default:
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "verification code sent"})
}

type userLoginRequest struct {
	Phone string `json:"phone" binding:"required,phonenumber"`
	Code  string `json:"code" binding:"required"`
}

type userLoginResponse struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
}

// @Summary Login with verification code
// @Tags Users
// @Description Exchanges phone and code for the user, creating it on first login
// @ModuleID userLogin
// @Accept  json
// @Produce  json
// @Param input body userLoginRequest true "phone and code"
// @Success 200 {object} userLoginResponse
// @Failure 400 {object} ErrorStruct
// @Failure 409 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Failure 503 {object} ErrorStruct
// @Router /user/login [post]
func (h *Handler) userLogin(c *gin.Context) {
	var req userLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErrorResponse(c, err)
		return
	}

	ctx := c.Request.Context()
	user, err := h.services.Users.Login(ctx, req.Phone, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrExpiredCode):
			errorResponse(c, InvalidVerificationCodeCode)
		case errors.Is(err, service.ErrUserConflict):
			errorResponseWithStatus(c, http.StatusConflict, UserConflictCode)
		case errors.Is(err, service.ErrUserPersistence):
			logger.Error("login user persistence failed", zap.Error(err))
			errorResponseWithStatus(c, http.StatusInternalServerError, UserPersistenceCode)
		case errors.Is(err, service.ErrStoreUnavailable):
			logger.Error("login store unavailable", zap.Error(err))
			errorResponseWithStatus(c, http.StatusServiceUnavailable, StoreUnavailableCode)
		default:
			logger.Error("login failed", zap.Error(err))
			c.AbortWithStatus(http.StatusInternalServerError)
		}
		return
	}

	tokens, err := h.services.Users.CreateSession(ctx, user)
	if err != nil {
		logger.Error("create session failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, userLoginResponse{
		User:        user,
		AccessToken: tokens.AccessToken,
		ExpiresIn:   int64(tokens.AccessTTL.Seconds()),
	})
}

// @Summary Logout
// @Tags Users
// @Description Revokes the bearer token
// @ModuleID userLogout
// @Produce  json
// @Success 200 {object} messageResponse
// @Failure 401 {object} ErrorStruct
// @Security UserAuth
// @Router /user/logout [post]
func (h *Handler) userLogout(c *gin.Context) {
	token := c.GetString(tokenCtx)

	if err := h.services.Users.Logout(c.Request.Context(), token); err != nil {
		logger.Error("logout failed", zap.Error(err))
		errorResponseWithStatus(c, http.StatusServiceUnavailable, StoreUnavailableCode)
		return
	}

	c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// @Summary Current user
// @Tags Users
// @ModuleID userMe
// @Produce  json
// @Success 200 {object} domain.User
// @Failure 401 {object} ErrorStruct
// @Failure 404 {object} ErrorStruct
// @Security UserAuth
// @Router /user/me [get]
func (h *Handler) userMe(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		errorResponseWithStatus(c, http.StatusUnauthorized, UnauthorizedCode)
		return
	}

	user, err := h.services.Users.GetOneByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			errorResponseWithStatus(c, http.StatusNotFound, UserNotFoundCode)
			return
		}
		logger.Error("get current user failed", zap.Error(err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, user)
}
