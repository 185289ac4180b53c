package plant

import (
	"net/url"
	"strings"

	"github.com/heartmarshall/plantwater-backend/internal/domain"
)

const (
	MinIntervalDays = 1
	MaxIntervalDays = 365
	maxNameLen      = 200
	maxTips         = 20
	maxTipLen       = 500
)

// CreatePlantInput holds the parameters for adding a plant.
type CreatePlantInput struct {
	ScientificName       string
	CommonName           string
	WateringIntervalDays int
	Difficulty           domain.Difficulty
	Tips                 []string
	Care                 domain.Care
	Image                *string
}

// Validate checks all fields and collects all errors.
func (i CreatePlantInput) Validate() error {
	var errs []domain.FieldError

	for _, f := range []struct{ field, value string }{
		{"scientific_name", i.ScientificName},
		{"common_name", i.CommonName},
	} {
		v := strings.TrimSpace(f.value)
		if v == "" {
			errs = append(errs, domain.FieldError{Field: f.field, Message: "required"})
		}
		if len(v) > maxNameLen {
			errs = append(errs, domain.FieldError{Field: f.field, Message: "max 200 characters"})
		}
	}

	if i.WateringIntervalDays < MinIntervalDays || i.WateringIntervalDays > MaxIntervalDays {
		errs = append(errs, domain.FieldError{Field: "watering_interval_days", Message: "must be between 1 and 365"})
	}

	if !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be one of VERY_EASY, EASY, MEDIUM, HARD"})
	}

	tips := cleanTips(i.Tips)
	if len(tips) > maxTips {
		errs = append(errs, domain.FieldError{Field: "tips", Message: "max 20 tips"})
	}
	for _, tip := range tips {
		if len(tip) > maxTipLen {
			errs = append(errs, domain.FieldError{Field: "tips", Message: "each tip max 500 characters"})
			break
		}
	}

	if img := trimOrNil(i.Image); img != nil && !isHTTPURL(*img) {
		errs = append(errs, domain.FieldError{Field: "image", Message: "must be an http(s) URL"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// cleanTips trims every tip and drops blank ones, keeping order.
func cleanTips(tips []string) []string {
	out := make([]string, 0, len(tips))
	for _, t := range tips {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func isHTTPURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
