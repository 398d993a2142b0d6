package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ips-data-svc/src/internal/config"
	"ips-data-svc/src/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler interface {
	Signup(c *gin.Context)
	Login(c *gin.Context)
	RefreshToken(c *gin.Context)
	ChangeVerificationStatus(c *gin.Context)
}

type handler struct {
	config  *config.Configuration
	service Service
}

func NewHandler(cfg *config.Configuration, service Service) Handler {
	return &handler{config: cfg, service: service}
}

func (h *handler) Signup(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "phone, password and full_name are required",
			"data":    nil,
		})
		return
	}

	response, err := h.service.Signup(ctx, req.Phone, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrPhoneRegistered):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error(), "data": nil})
		default:
			logrus.WithError(err).Error("Signup failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating account", "data": nil})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User registered successfully. Account is pending verification.",
		"data":    response,
	})
}

func (h *handler) Login(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "phone and password are required",
			"data":    nil,
		})
		return
	}

	response, err := h.service.Authenticate(ctx, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error(), "data": nil})
		case errors.Is(err, models.ErrAccountNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Your account is not yet verified. Please contact administrator.", "data": nil})
		default:
			logrus.WithError(err).Error("Login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error logging in", "data": nil})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"data":    response,
	})
}

func (h *handler) RefreshToken(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "refresh_token is required",
			"data":    nil,
		})
		return
	}

	response, err := h.service.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidRefreshToken),
			errors.Is(err, models.ErrTokenExpiredOrRevoked),
			errors.Is(err, models.ErrAccountInactive):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error(), "data": nil})
		default:
			logrus.WithError(err).Error("Token refresh failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error refreshing token", "data": nil})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token refreshed successfully",
		"data":    response,
	})
}

func (h *handler) ChangeVerificationStatus(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req ChangeVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "phone, status and security_key are required",
			"data":    nil,
		})
		return
	}

	if err := h.service.SetVerification(ctx, req.Phone, *req.Status, req.SecurityKey); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidSecurityKey):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error(), "data": nil})
		case errors.Is(err, models.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error(), "data": nil})
		default:
			logrus.WithError(err).Error("Verification status change failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating verification status", "data": nil})
		}
		return
	}

	statusText := "deactivated"
	if *req.Status {
		statusText = "activated"
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User account " + statusText + " successfully",
		"data":    nil,
	})
}

func (h *handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), time.Duration(h.config.App.Timeout)*time.Second)
}
