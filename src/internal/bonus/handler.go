package bonus

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

const dateLayout = "2006-01-02"

type Handler interface {
	GetBonuses(c *gin.Context)
}

type handler struct {
	config  *config.Configuration
	service Service
}

func NewHandler(cfg *config.Configuration, service Service) Handler {
	return &handler{config: cfg, service: service}
}

func (h *handler) GetBonuses(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(h.config.App.Timeout)*time.Second)
	defer cancel()

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized", "data": nil})
		return
	}

	start, err := parseDateParam(c, "start_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "start_date must be in YYYY-MM-DD format", "data": nil})
		return
	}
	end, err := parseDateParam(c, "end_date")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "end_date must be in YYYY-MM-DD format", "data": nil})
		return
	}

	response, err := h.service.List(ctx, userID.(string), start, end)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error(), "data": nil})
		default:
			logrus.WithError(err).Error("Failed to list bonuses")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error retrieving bonuses", "data": nil})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bonuses retrieved successfully",
		"data":    response,
	})
}

func parseDateParam(c *gin.Context, name string) (*time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	// End-of-day for the upper bound so the range is inclusive.
	if name == "end_date" {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return &parsed, nil
}
