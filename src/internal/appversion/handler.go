package appversion

import (
	"context"
	"net/http"
	"time"

	"ips-data-svc/src/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler interface {
	CheckAppVersion(c *gin.Context)
}

type handler struct {
	config  *config.Configuration
	service Service
}

func NewHandler(cfg *config.Configuration, service Service) Handler {
	return &handler{config: cfg, service: service}
}

func (h *handler) CheckAppVersion(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(h.config.App.Timeout)*time.Second)
	defer cancel()

	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "version_name is required",
			"data":    nil,
		})
		return
	}

	response, err := h.service.Check(ctx, req.VersionName)
	if err != nil {
		logrus.WithError(err).Error("App version check failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error checking app version", "data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "App version checked",
		"data":    response,
	})
}
