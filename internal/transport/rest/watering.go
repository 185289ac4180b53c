package rest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/pkg/ctxutil"
)

type wateringService interface {
	Today() domain.Date
	MonthView(ctx context.Context, year int, month time.Month, ref domain.Date) (*domain.MonthView, error)
	Toggle(ctx context.Context, date domain.Date, plantID int) (bool, error)
	Stats(ctx context.Context, ref domain.Date) (*domain.Stats, error)
	Upcoming(ctx context.Context, from domain.Date, days int) ([]domain.UpcomingWatering, error)
	ExportICS(ctx context.Context, w io.Writer, from, to domain.Date) error
}

const (
	defaultUpcomingDays = 7
	defaultExportDays   = 90
)

// WateringHandler serves the calendar, toggle and statistics endpoints.
type WateringHandler struct {
	svc wateringService
	log *slog.Logger
}

// NewWateringHandler creates a WateringHandler.
func NewWateringHandler(svc wateringService, logger *slog.Logger) *WateringHandler {
	return &WateringHandler{svc: svc, log: logger.With("handler", "watering")}
}

type scheduledPlantDTO struct {
	PlantID    int    `json:"plantId"`
	CommonName string `json:"commonName"`
	Watered    bool   `json:"watered"`
}

type calendarDayDTO struct {
	Date    string              `json:"date"`
	IsToday bool                `json:"isToday"`
	Plants  []scheduledPlantDTO `json:"plants"`
}

type monthViewResponse struct {
	Year          int              `json:"year"`
	Month         int              `json:"month"`
	LeadingBlanks int              `json:"leadingBlanks"`
	Days          []calendarDayDTO `json:"days"`
}

type toggleRequest struct {
	Date    string `json:"date"    validate:"required,datetime=2006-01-02"`
	PlantID int    `json:"plantId" validate:"required,gt=0"`
}

type toggleResponse struct {
	Date      string `json:"date"`
	PlantID   int    `json:"plantId"`
	Watered   bool   `json:"watered"`
	Persisted bool   `json:"persisted"`
	Error     string `json:"error,omitempty"`
}

type statsResponse struct {
	Date             string `json:"date"`
	TotalPlants      int    `json:"totalPlants"`
	ScheduledToday   int    `json:"scheduledToday"`
	PendingToday     int    `json:"pendingToday"`
	MonthlyWatering  int    `json:"monthlyWatering"`
	WateredThisMonth int    `json:"wateredThisMonth"`
}

type upcomingDTO struct {
	Date       string `json:"date"`
	PlantID    int    `json:"plantId"`
	CommonName string `json:"commonName"`
	Watered    bool   `json:"watered"`
}

// Calendar handles GET /api/calendar?year=&month=. Defaults to the current month.
func (h *WateringHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	today := h.svc.Today()

	year, err := queryInt(r, "year", today.Year)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	month, err := queryInt(r, "month", int(today.Month))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	view, err := h.svc.MonthView(r.Context(), year, time.Month(month), today)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := monthViewResponse{
		Year:          view.Year,
		Month:         int(view.Month),
		LeadingBlanks: view.LeadingBlanks,
		Days:          make([]calendarDayDTO, 0, len(view.Days)),
	}
	for _, d := range view.Days {
		day := calendarDayDTO{
			Date:    d.Date.String(),
			IsToday: d.IsToday,
			Plants:  make([]scheduledPlantDTO, 0, len(d.Plants)),
		}
		for _, p := range d.Plants {
			day.Plants = append(day.Plants, scheduledPlantDTO(p))
		}
		resp.Days = append(resp.Days, day)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Toggle handles POST /api/watering/toggle. When the mark cannot be persisted
// the response is 503 and still carries the new in-memory state.
func (h *WateringHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	watered, err := h.svc.Toggle(r.Context(), date, req.PlantID)
	resp := toggleResponse{Date: date.String(), PlantID: req.PlantID, Watered: watered, Persisted: err == nil}
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrStorageUnavailable):
		resp.Error = "storage unavailable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	default:
		handleError(w, r, h.log, err)
		return
	}

	editor, _ := ctxutil.EditorFromCtx(r.Context())
	h.log.DebugContext(r.Context(), "toggle via api",
		slog.Int("plant_id", req.PlantID),
		slog.String("date", resp.Date),
		slog.String("editor", editor),
	)
	writeJSON(w, http.StatusOK, resp)
}

// Stats handles GET /api/stats?date=. Defaults to today.
func (h *WateringHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ref, err := queryDate(r, "date", h.svc.Today())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	st, err := h.svc.Stats(r.Context(), ref)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		Date:             ref.String(),
		TotalPlants:      st.TotalPlants,
		ScheduledToday:   st.ScheduledToday,
		PendingToday:     st.PendingToday,
		MonthlyWatering:  st.MonthlyWatering,
		WateredThisMonth: st.WateredThisMonth,
	})
}

// Upcoming handles GET /api/upcoming?days=. Starts today.
func (h *WateringHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", defaultUpcomingDays)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.svc.Upcoming(r.Context(), h.svc.Today(), days)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]upcomingDTO, 0, len(items))
	for _, it := range items {
		resp = append(resp, upcomingDTO{
			Date:       it.Date.String(),
			PlantID:    it.PlantID,
			CommonName: it.CommonName,
			Watered:    it.Watered,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ExportICS handles GET /api/calendar.ics?from=&to=. Defaults to the next
// 90 days starting today.
func (h *WateringHandler) ExportICS(w http.ResponseWriter, r *http.Request) {
	today := h.svc.Today()
	from, err := queryDate(r, "from", today)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	to, err := queryDate(r, "to", from.AddDays(defaultExportDays-1))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var buf bytes.Buffer
	if err := h.svc.ExportICS(r.Context(), &buf, from, to); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="watering.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
