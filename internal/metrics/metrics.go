package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FavoritesToggledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "discoteka_favorites_toggled_total",
		Help: "Favorite toggles by outcome (added/removed).",
	}, []string{"outcome"})

	CategoryDeletesBlockedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "discoteka_category_deletes_blocked_total",
		Help: "Category delete attempts refused by the usage guard.",
	})

	AlbumsTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "discoteka_albums_total",
		Help: "Total number of albums in the database.",
	})

	CategoriesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "discoteka_categories_total",
		Help: "Total number of categories in the database.",
	})
)
