package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"pantrykit/internal/expiry"
	"pantrykit/internal/models"
)

// pantryItemRequest carries the caller-supplied attributes of a pantry
// item. Malformed quantities and timestamps are rejected here, at the
// validation boundary, so the core never sees them.
type pantryItemRequest struct {
	Name       string    `json:"name" binding:"required"`
	Quantity   float64   `json:"quantity" binding:"min=0"`
	Unit       string    `json:"unit"`
	Category   string    `json:"category"`
	ExpiryDate time.Time `json:"expiryDate" binding:"required"`
}

// pantryItemView decorates a pantry item with its freshness status for
// display.
type pantryItemView struct {
	models.PantryItem
	Status          expiry.Status `json:"status"`
	DaysUntilExpiry int           `json:"daysUntilExpiry"`
}

func (p *PantryAPI) pantryViews(items []models.PantryItem, now time.Time) []pantryItemView {
	views := make([]pantryItemView, 0, len(items))
	for _, item := range items {
		views = append(views, pantryItemView{
			PantryItem:      item,
			Status:          expiry.Classify(item.ExpiryDate, now),
			DaysUntilExpiry: expiry.DaysUntil(item.ExpiryDate, now),
		})
	}
	return views
}

// ListPantry returns the user's pantry, soonest-expiring first.
func (p *PantryAPI) ListPantry(c *gin.Context) {
	items, err := p.store.Pantry(currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, p.pantryViews(expiry.SortByExpiry(items), p.now()))
}

// AddPantryItem creates a new pantry item for the user.
func (p *PantryAPI) AddPantryItem(c *gin.Context) {
	var req pantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.PantryItem{
		ItemID:     uuid.NewString(),
		UserID:     currentUser(c),
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Category:   req.Category,
		ExpiryDate: req.ExpiryDate,
		AddedDate:  p.now(),
	}

	if err := p.store.AddPantryItem(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	p.hub.Broadcast(PantryEvent{
		Type:      EventItemAdded,
		UserID:    item.UserID,
		Item:      item.Name,
		Timestamp: p.now(),
	})

	c.JSON(http.StatusCreated, item)
}

// UpdatePantryItem overwrites the attributes of an existing pantry item.
func (p *PantryAPI) UpdatePantryItem(c *gin.Context) {
	var req pantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.PantryItem{
		ItemID:     c.Param("id"),
		UserID:     currentUser(c),
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Category:   req.Category,
		ExpiryDate: req.ExpiryDate,
	}

	if err := p.store.UpdatePantryItem(&item); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pantry item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeletePantryItem removes a pantry item.
func (p *PantryAPI) DeletePantryItem(c *gin.Context) {
	userID := currentUser(c)
	itemID := c.Param("id")

	if err := p.store.DeletePantryItem(userID, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pantry item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	p.hub.Broadcast(PantryEvent{
		Type:      EventItemRemoved,
		UserID:    userID,
		Item:      itemID,
		Timestamp: p.now(),
	})

	c.JSON(http.StatusOK, gin.H{"message": "Pantry item removed"})
}

// GetExpiryAlerts returns the expired and expiring-soon slices of the
// user's pantry.
func (p *PantryAPI) GetExpiryAlerts(c *gin.Context) {
	items, err := p.store.Pantry(currentUser(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	now := p.now()
	expired := make([]models.PantryItem, 0)
	expiringSoon := make([]models.PantryItem, 0)
	fresh := 0
	for _, item := range items {
		switch expiry.Classify(item.ExpiryDate, now) {
		case expiry.StatusExpired:
			expired = append(expired, item)
		case expiry.StatusExpiringSoon:
			expiringSoon = append(expiringSoon, item)
		default:
			fresh++
		}
	}

	p.collector.SetPantryStatus(len(expired), len(expiringSoon), fresh)
	p.monitor.RecordPantrySnapshot(currentUser(c), len(items), len(expired), len(expiringSoon))

	c.JSON(http.StatusOK, gin.H{
		"expired":      expired,
		"expiringSoon": expiringSoon,
	})
}
