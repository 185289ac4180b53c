package domain

// Plant is a watering subject. ID is unique and stable for the plant's lifetime.
type Plant struct {
	ID                   int
	ScientificName       string
	CommonName           string
	WateringIntervalDays int
	Difficulty           Difficulty
	Tips                 []string
	Care                 Care
	Image                *string
}

// Care holds free-text care descriptors. None of these are validated.
type Care struct {
	Light       string
	Temperature string
	Humidity    string
	Soil        string
}

// NextPlantID returns one greater than the maximum existing id, or 1 for an empty collection.
func NextPlantID(plants []Plant) int {
	maxID := 0
	for _, p := range plants {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// CheckUniqueIDs reports the first id that appears more than once.
func CheckUniqueIDs(plants []Plant) error {
	seen := make(map[int]struct{}, len(plants))
	for _, p := range plants {
		if _, ok := seen[p.ID]; ok {
			return &DuplicatePlantIDError{ID: p.ID}
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
