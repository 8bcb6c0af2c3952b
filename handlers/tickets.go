package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grich88/civic/services"
)

// PurchaseTicket buys a ticket for the signed-in user. Anti-scalping
// flagged events require a verified identity.
func PurchaseTicket(c *gin.Context) {
	var req struct {
		EventID    string `json:"event_id" binding:"required"`
		TicketType string `json:"ticket_type"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user, err := authService.GetUser(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	ticket, err := ticketService.PurchaseTicket(user, req.EventID, req.TicketType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrVerificationRequired):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrEventSoldOut):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purchase ticket"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Ticket purchased successfully",
		"data":    ticket,
	})
}

// GetUserTickets returns the signed-in user's tickets
func GetUserTickets(c *gin.Context) {
	userID := c.GetString("user_id")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ticketService.UserTickets(userID),
	})
}

// GetWallet returns the signed-in user's mock wallet
func GetWallet(c *gin.Context) {
	walletData, err := authService.WalletData(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    walletData,
	})
}
