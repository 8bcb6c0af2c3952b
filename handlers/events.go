package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/grich88/civic/services"
)

// GetEvents returns the unified event list across active vendors and
// native events, ascending by date.
func GetEvents(c *gin.Context) {
	events := aggregator.AllEvents()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    events,
	})
}

// GetEvent returns a single event with its derived availability state
func GetEvent(c *gin.Context) {
	eventID := c.Param("id")

	event, err := aggregator.FindEvent(eventID)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    event,
		"availability": gin.H{
			"tickets_remaining": event.TicketsRemaining(),
			"is_full":           event.IsFull(),
			"is_past":           event.IsPast(time.Now()),
		},
	})
}

// GetAggregatedImpact returns the cross-vendor social impact summary
func GetAggregatedImpact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    aggregator.AggregatedImpact(),
	})
}
