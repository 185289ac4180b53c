package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
	"github.com/heartmarshall/plantwater-backend/internal/schedule"
	"github.com/heartmarshall/plantwater-backend/internal/service/plant"
	"github.com/heartmarshall/plantwater-backend/pkg/ctxutil"
)

type plantService interface {
	ListPlants(ctx context.Context, query string) ([]domain.Plant, error)
	GetPlant(ctx context.Context, id int) (*domain.Plant, error)
	AddPlant(ctx context.Context, input plant.CreatePlantInput) (*domain.Plant, error)
}

type todayProvider interface {
	Today() domain.Date
}

// PlantHandler serves the plant collection endpoints.
type PlantHandler struct {
	plants plantService
	engine *schedule.Engine
	today  todayProvider
	log    *slog.Logger
}

// NewPlantHandler creates a PlantHandler.
func NewPlantHandler(plants plantService, engine *schedule.Engine, today todayProvider, logger *slog.Logger) *PlantHandler {
	return &PlantHandler{
		plants: plants,
		engine: engine,
		today:  today,
		log:    logger.With("handler", "plant"),
	}
}

type careDTO struct {
	Light       string `json:"light"       validate:"max=500"`
	Temperature string `json:"temperature" validate:"max=500"`
	Humidity    string `json:"humidity"    validate:"max=500"`
	Soil        string `json:"soil"        validate:"max=500"`
}

type createPlantRequest struct {
	ScientificName       string   `json:"scientificName"       validate:"required,max=200"`
	CommonName           string   `json:"commonName"           validate:"required,max=200"`
	WateringIntervalDays int      `json:"wateringIntervalDays" validate:"required,min=1,max=365"`
	Difficulty           string   `json:"difficulty"           validate:"required,oneof=VERY_EASY EASY MEDIUM HARD"`
	Tips                 []string `json:"tips"                 validate:"max=20,dive,max=500"`
	Care                 careDTO  `json:"care"`
	Image                *string  `json:"image"                validate:"omitempty,max=2048"`
}

type plantResponse struct {
	ID                   int      `json:"id"`
	ScientificName       string   `json:"scientificName"`
	CommonName           string   `json:"commonName"`
	WateringIntervalDays int      `json:"wateringIntervalDays"`
	Difficulty           string   `json:"difficulty"`
	Tips                 []string `json:"tips"`
	Care                 careDTO  `json:"care"`
	Image                *string  `json:"image,omitempty"`
	FrequencyTier        string   `json:"frequencyTier"`
	NextWatering         *string  `json:"nextWatering,omitempty"`
}

// List handles GET /api/plants?q=.
func (h *PlantHandler) List(w http.ResponseWriter, r *http.Request) {
	plants, err := h.plants.ListPlants(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	today := h.today.Today()
	resp := make([]plantResponse, 0, len(plants))
	for _, p := range plants {
		resp = append(resp, h.toResponse(p, today))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/plants/{id}.
func (h *PlantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.plants.GetPlant(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, h.toResponse(*p, h.today.Today()))
}

// Create handles POST /api/plants.
func (h *PlantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPlantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.plants.AddPlant(r.Context(), plant.CreatePlantInput{
		ScientificName:       req.ScientificName,
		CommonName:           req.CommonName,
		WateringIntervalDays: req.WateringIntervalDays,
		Difficulty:           domain.Difficulty(req.Difficulty),
		Tips:                 req.Tips,
		Care: domain.Care{
			Light:       req.Care.Light,
			Temperature: req.Care.Temperature,
			Humidity:    req.Care.Humidity,
			Soil:        req.Care.Soil,
		},
		Image: req.Image,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	editor, _ := ctxutil.EditorFromCtx(r.Context())
	h.log.InfoContext(r.Context(), "plant created via api",
		slog.Int("plant_id", p.ID),
		slog.String("editor", editor),
	)
	writeJSON(w, http.StatusCreated, h.toResponse(*p, h.today.Today()))
}

func (h *PlantHandler) toResponse(p domain.Plant, today domain.Date) plantResponse {
	tips := p.Tips
	if tips == nil {
		tips = []string{}
	}
	resp := plantResponse{
		ID:                   p.ID,
		ScientificName:       p.ScientificName,
		CommonName:           p.CommonName,
		WateringIntervalDays: p.WateringIntervalDays,
		Difficulty:           p.Difficulty.String(),
		Tips:                 tips,
		Care: careDTO{
			Light:       p.Care.Light,
			Temperature: p.Care.Temperature,
			Humidity:    p.Care.Humidity,
			Soil:        p.Care.Soil,
		},
		Image:         p.Image,
		FrequencyTier: schedule.FrequencyTier(p.WateringIntervalDays).String(),
	}
	if next, err := h.engine.NextWateringDay(today, p); err == nil {
		s := next.String()
		resp.NextWatering = &s
	}
	return resp
}
