package domain

// Difficulty is the care difficulty of a plant. The set is closed and ordered.
type Difficulty string

const (
	DifficultyVeryEasy Difficulty = "VERY_EASY"
	DifficultyEasy     Difficulty = "EASY"
	DifficultyMedium   Difficulty = "MEDIUM"
	DifficultyHard     Difficulty = "HARD"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyVeryEasy, DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Rank orders difficulties from 0 (very easy) to 3 (hard). Invalid values rank -1.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyVeryEasy:
		return 0
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	}
	return -1
}

// FrequencyTier is a display label derived from a watering interval.
type FrequencyTier string

const (
	FrequencyFrequent FrequencyTier = "FREQUENT"
	FrequencyModerate FrequencyTier = "MODERATE"
	FrequencyRare     FrequencyTier = "RARE"
)

func (f FrequencyTier) String() string { return string(f) }

// StorageDriver selects the durable backend for ledger snapshots.
type StorageDriver string

const (
	StorageDriverMemory   StorageDriver = "memory"
	StorageDriverFile     StorageDriver = "file"
	StorageDriverPostgres StorageDriver = "postgres"
	StorageDriverSQLite   StorageDriver = "sqlite"
)

func (s StorageDriver) String() string { return string(s) }

func (s StorageDriver) IsValid() bool {
	switch s {
	case StorageDriverMemory, StorageDriverFile, StorageDriverPostgres, StorageDriverSQLite:
		return true
	}
	return false
}
