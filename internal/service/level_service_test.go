package service

import "testing"

func TestCalculateLevel(t *testing.T) {
	svc := NewLevelService()

	tests := []struct {
		name        string
		totalPoints int
		want        int
	}{
		{"zero points starts at level one", 0, 1},
		{"just below first threshold", 99, 1},
		{"first threshold crossed", 100, 2},
		{"mid range", 250, 3},
		{"last level reachable", 9900, 100},
		{"just below cap boundary", 9899, 99},
		{"points beyond cap stay at cap", 10000, 100},
		{"huge totals stay at cap", 1000000, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.CalculateLevel(tt.totalPoints); got != tt.want {
				t.Errorf("CalculateLevel(%d) = %d, want %d", tt.totalPoints, got, tt.want)
			}
		})
	}
}
