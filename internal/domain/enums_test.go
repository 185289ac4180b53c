package domain

import "testing"

func TestDifficulty_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d    Difficulty
		want bool
	}{
		{DifficultyVeryEasy, true},
		{DifficultyEasy, true},
		{DifficultyMedium, true},
		{DifficultyHard, true},
		{Difficulty("EXTREME"), false},
		{Difficulty(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.d), func(t *testing.T) {
			t.Parallel()
			if got := tt.d.IsValid(); got != tt.want {
				t.Errorf("Difficulty(%q).IsValid() = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestDifficulty_RankIsOrdered(t *testing.T) {
	t.Parallel()

	ordered := []Difficulty{DifficultyVeryEasy, DifficultyEasy, DifficultyMedium, DifficultyHard}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Errorf("%s should rank below %s", ordered[i-1], ordered[i])
		}
	}
	if Difficulty("nope").Rank() != -1 {
		t.Error("invalid difficulty should rank -1")
	}
}

func TestStorageDriver_IsValid(t *testing.T) {
	t.Parallel()

	for _, d := range []StorageDriver{StorageDriverMemory, StorageDriverFile, StorageDriverPostgres, StorageDriverSQLite} {
		if !d.IsValid() {
			t.Errorf("StorageDriver(%q).IsValid() = false, want true", d)
		}
	}
	if StorageDriver("redis").IsValid() {
		t.Error("StorageDriver(redis).IsValid() = true, want false")
	}
}
