package session

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"ips-data-svc/src/internal/config"
	"ips-data-svc/src/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler interface {
	CreateSession(c *gin.Context)
	CloseSession(c *gin.Context)
	CancelSession(c *gin.Context)
	GetSessions(c *gin.Context)
}

type handler struct {
	config  *config.Configuration
	service Service
}

func NewHandler(cfg *config.Configuration, service Service) Handler {
	return &handler{config: cfg, service: service}
}

func (h *handler) CreateSession(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "session_id and timestamp are required",
			"data":    nil,
		})
		return
	}

	if req.Timestamp <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "timestamp must be a positive number",
			"data":    nil,
		})
		return
	}

	response, err := h.service.Create(ctx, req.SessionID, req.Timestamp, currentUserID(c))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSessionExists):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": err.Error(), "data": nil})
		case errors.Is(err, models.ErrInvalidSessionID):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error(), "data": nil})
		default:
			logrus.WithError(err).WithField("session_id", req.SessionID).Error("Failed to create session")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating session", "data": nil})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Session created successfully",
		"data":    response,
	})
}

func (h *handler) CloseSession(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req CloseSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "session_id and end_timestamp are required",
			"data":    nil,
		})
		return
	}

	if err := h.service.Close(ctx, req.SessionID, req.EndTimestamp); err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error(), "data": nil})
		case errors.Is(err, models.ErrSessionClosed), errors.Is(err, models.ErrInvalidTimestamp):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error(), "data": nil})
		default:
			logrus.WithError(err).WithField("session_id", req.SessionID).Error("Failed to close session")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error closing session", "data": nil})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Session closed successfully",
		"data":    nil,
	})
}

func (h *handler) CancelSession(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	var req CancelSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "session_id is required",
			"data":    nil,
		})
		return
	}

	userID := currentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required", "data": nil})
		return
	}

	if err := h.service.Cancel(ctx, req.SessionID, *userID); err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error(), "data": nil})
		case errors.Is(err, models.ErrNotSessionOwner):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": err.Error(), "data": nil})
		case errors.Is(err, models.ErrSessionTerminal):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error(), "data": nil})
		default:
			logrus.WithError(err).WithField("session_id", req.SessionID).Error("Failed to cancel session")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error cancelling session", "data": nil})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Session cancelled successfully",
		"data":    nil,
	})
}

func (h *handler) GetSessions(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	page := parseIntParam(c, "page", 1)
	limit := parseIntParam(c, "limit", 50)

	items, err := h.service.List(ctx, page, limit)
	if err != nil {
		logrus.WithError(err).Error("Failed to list sessions")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error retrieving sessions", "data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sessions retrieved successfully",
		"data":    items,
	})
}

func (h *handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), time.Duration(h.config.App.Timeout)*time.Second)
}

func currentUserID(c *gin.Context) *string {
	value, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		return nil
	}
	return &userID
}

func parseIntParam(c *gin.Context, param string, defaultValue int) int {
	value := c.Query(param)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"param": param,
			"value": value,
			"error": err,
		}).Warn("Invalid integer parameter, using default")

		return defaultValue
	}
	return parsed
}
