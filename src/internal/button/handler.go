package button

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
	SubmitButtonPress(c *gin.Context)
}

type handler struct {
	config  *config.Configuration
	service Service
}

func NewHandler(cfg *config.Configuration, service Service) Handler {
	return &handler{config: cfg, service: service}
}

func (h *handler) SubmitButtonPress(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(h.config.App.Timeout)*time.Second)
	defer cancel()

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "session_id, action and timestamp are required",
			"data":    nil,
		})
		return
	}

	if err := h.service.Submit(ctx, &req, currentUserID(c)); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidAction), errors.Is(err, models.ErrInvalidSample):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error(), "data": nil})
		case errors.Is(err, models.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error(), "data": nil})
		default:
			logrus.WithError(err).WithFields(logrus.Fields{
				"session_id": req.SessionID,
				"action":     req.Action,
			}).Error("Failed to submit button press")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error submitting button press", "data": nil})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Button press recorded successfully",
		"data":    nil,
	})
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
