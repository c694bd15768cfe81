package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector handles Prometheus metric collection and reporting for the
// matching and cooking pipeline.
type Collector struct {
	registry *prometheus.Registry

	matchRuns         prometheus.Counter
	matchPercentage   prometheus.Histogram
	cooksTotal        *prometheus.CounterVec
	itemsDepleted     prometheus.Counter
	shoppingAdditions prometheus.Counter
	pantryStatus      *prometheus.GaugeVec
}

// NewCollector creates a collector with its own registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		matchRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recipe_match_runs_total",
			Help: "Number of recipe match computations",
		}),
		matchPercentage: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "recipe_match_percentage",
			Help:    "Distribution of per-recipe match percentages",
			Buckets: prometheus.LinearBuckets(0, 10, 11), // 0-100 in 10% buckets
		}),
		cooksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipes_cooked_total",
				Help: "Number of cook operations per recipe",
			},
			[]string{"recipe"},
		),
		itemsDepleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pantry_items_depleted_total",
			Help: "Pantry items removed after depletion to zero",
		}),
		shoppingAdditions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shopping_list_items_added_total",
			Help: "Shopping list items synthesized from recipe gaps",
		}),
		pantryStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pantry_items_by_status",
				Help: "Pantry items grouped by freshness status",
			},
			[]string{"status"},
		),
	}

	c.registry.MustRegister(
		c.matchRuns,
		c.matchPercentage,
		c.cooksTotal,
		c.itemsDepleted,
		c.shoppingAdditions,
		c.pantryStatus,
	)
	return c
}

// RecordMatchRun records a completed match computation and the resulting
// percentages.
func (c *Collector) RecordMatchRun(percentages []int) {
	c.matchRuns.Inc()
	for _, p := range percentages {
		c.matchPercentage.Observe(float64(p))
	}
}

// RecordCook records a cook operation and how many pantry items it
// depleted to zero.
func (c *Collector) RecordCook(recipeName string, depleted int) {
	c.cooksTotal.WithLabelValues(recipeName).Inc()
	c.itemsDepleted.Add(float64(depleted))
}

// RecordShoppingAdditions records net-new shopping list items.
func (c *Collector) RecordShoppingAdditions(count int) {
	c.shoppingAdditions.Add(float64(count))
}

// SetPantryStatus records the current freshness breakdown of a pantry.
func (c *Collector) SetPantryStatus(expired, expiringSoon, fresh int) {
	c.pantryStatus.WithLabelValues("expired").Set(float64(expired))
	c.pantryStatus.WithLabelValues("expiring-soon").Set(float64(expiringSoon))
	c.pantryStatus.WithLabelValues("fresh").Set(float64(fresh))
}

// Handler exposes the collector's registry for scraping.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
