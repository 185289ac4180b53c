package schedule

import "github.com/heartmarshall/plantwater-backend/internal/domain"

// FrequencyTier classifies a watering interval for display.
func FrequencyTier(intervalDays int) domain.FrequencyTier {
	switch {
	case intervalDays <= 5:
		return domain.FrequencyFrequent
	case intervalDays <= 12:
		return domain.FrequencyModerate
	default:
		return domain.FrequencyRare
	}
}
