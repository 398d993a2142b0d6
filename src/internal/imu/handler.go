package imu

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
	UploadIMUData(c *gin.Context)
}

type handler struct {
	config  *config.Configuration
	service Service
}

func NewHandler(cfg *config.Configuration, service Service) Handler {
	return &handler{config: cfg, service: service}
}

func (h *handler) UploadIMUData(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(h.config.App.Timeout)*time.Second)
	defer cancel()

	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "data_points is required and must contain at least 1 data point",
			"data":    nil,
		})
		return
	}

	logrus.WithFields(logrus.Fields{
		"points":         len(req.DataPoints),
		"content_length": c.Request.ContentLength,
	}).Info("IMU upload request received")

	response, err := h.service.Upload(ctx, req.SessionID, currentUserID(c), req.DataPoints)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyBatch), errors.Is(err, models.ErrInvalidSample):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error(), "data": nil})
		case errors.Is(err, models.ErrPublishFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Upload could not be accepted, please retry", "data": nil})
		default:
			logrus.WithError(err).WithField("points", len(req.DataPoints)).Error("IMU upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error uploading IMU data", "data": nil})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "IMU data uploaded successfully",
		"data":    response,
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
