package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pantrykit/internal/matching"
	"pantrykit/internal/models"
	"pantrykit/internal/monitoring"
)

// PantryAPI represents the main API handler for the pantry service
type PantryAPI struct {
	Router    *gin.Engine
	store     Store
	engine    *matching.Engine
	collector *monitoring.Collector
	monitor   *monitoring.Monitor
	hub       *Hub
	secret    []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// Store represents the persistence layer the API depends on. Collections
// are keyed by an opaque user identity; the recipe catalog is re-read on
// every call.
type Store interface {
	Pantry(userID string) ([]models.PantryItem, error)
	AddPantryItem(item *models.PantryItem) error
	UpdatePantryItem(item *models.PantryItem) error
	DeletePantryItem(userID, itemID string) error
	ReplacePantry(userID string, items []models.PantryItem) error

	Recipes() ([]models.Recipe, error)
	RecipeByID(recipeID string) (*models.Recipe, error)

	ShoppingList(userID string) ([]models.ShoppingListItem, error)
	AddShoppingItems(userID string, items []models.ShoppingListItem) error
	TogglePurchased(userID, itemID string) error
	DeleteShoppingItem(userID, itemID string) error
	ClearPurchased(userID string) error
}

// Options configures a PantryAPI instance.
type Options struct {
	Secret   string
	TokenTTL time.Duration
	// Now supplies the current time for expiry classification and
	// timestamps; defaults to time.Now.
	Now func() time.Time
}

// NewPantryAPI creates a new pantry API instance
func NewPantryAPI(store Store, opts Options) *PantryAPI {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = 24 * time.Hour
	}

	api := &PantryAPI{
		Router:    gin.Default(),
		store:     store,
		engine:    matching.NewEngine(nil),
		collector: monitoring.NewCollector(),
		monitor:   monitoring.NewMonitor(),
		hub:       newHub(),
		secret:    []byte(opts.Secret),
		tokenTTL:  opts.TokenTTL,
		now:       opts.Now,
	}

	api.setupRoutes()
	return api
}

// Collector returns the API's Prometheus collector for scraping.
func (p *PantryAPI) Collector() *monitoring.Collector {
	return p.collector
}

// setupRoutes configures all API endpoints
func (p *PantryAPI) setupRoutes() {
	// Health check
	p.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "PantryKit API is running"})
	})

	// Authentication
	p.Router.POST("/auth/register", p.Register)
	p.Router.POST("/auth/login", p.Login)

	// Event stream
	p.Router.GET("/ws", p.handleWebSocket)

	v1 := p.Router.Group("/api/v1")
	v1.Use(p.AuthMiddleware())
	{
		// Pantry management
		v1.GET("/pantry", p.ListPantry)
		v1.POST("/pantry", p.AddPantryItem)
		v1.PUT("/pantry/:id", p.UpdatePantryItem)
		v1.DELETE("/pantry/:id", p.DeletePantryItem)
		v1.GET("/pantry/alerts", p.GetExpiryAlerts)

		// Recipe matching
		v1.GET("/recipes", p.ListRecipes)
		v1.GET("/recipes/matches", p.GetMatches)
		v1.GET("/recipes/:id/cookable", p.GetCookable)
		v1.POST("/recipes/:id/cook", p.CookRecipe)
		v1.POST("/recipes/:id/shopping-list", p.AddToShoppingList)

		// Shopping list
		v1.GET("/shopping", p.ListShopping)
		v1.PUT("/shopping/:id/purchased", p.ToggleShoppingItem)
		v1.DELETE("/shopping/:id", p.DeleteShoppingItem)
		v1.POST("/shopping/clear-completed", p.ClearCompletedShopping)

		// Service statistics
		v1.GET("/stats", p.GetStats)
		v1.POST("/stats/reset", p.ResetStats)
	}
}

// GetStats returns runtime statistics recorded by the monitor.
func (p *PantryAPI) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, p.monitor.GetMetrics())
}

// ResetStats clears the monitor's recorded statistics. Prometheus
// counters are unaffected.
func (p *PantryAPI) ResetStats(c *gin.Context) {
	p.monitor.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "Statistics reset"})
}
