package rest

import (
	"net/http"

	"github.com/heartmarshall/plantwater-backend/internal/transport/middleware"
)

// Routes groups the handlers and the middleware applied to write routes.
type Routes struct {
	Health   *HealthHandler
	Plants   *PlantHandler
	Watering *WateringHandler
	// Write wraps mutating routes (auth, rate limit).
	Write middleware.Middleware
}

// NewMux registers every endpoint on a new ServeMux.
func NewMux(rt Routes) *http.ServeMux {
	write := rt.Write
	if write == nil {
		write = middleware.Chain()
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	mux.HandleFunc("GET /api/plants", rt.Plants.List)
	mux.HandleFunc("GET /api/plants/{id}", rt.Plants.Get)
	mux.Handle("POST /api/plants", write(http.HandlerFunc(rt.Plants.Create)))

	mux.HandleFunc("GET /api/calendar", rt.Watering.Calendar)
	mux.HandleFunc("GET /api/calendar.ics", rt.Watering.ExportICS)
	mux.Handle("POST /api/watering/toggle", write(http.HandlerFunc(rt.Watering.Toggle)))
	mux.HandleFunc("GET /api/stats", rt.Watering.Stats)
	mux.HandleFunc("GET /api/upcoming", rt.Watering.Upcoming)

	return mux
}
