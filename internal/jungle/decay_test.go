package jungle

import (
	"math"
	"testing"
	"time"
)

func TestAfterCorrect(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		in, want float64
	}{
		{100, 50},
		{50, 25},
		{25, 12},
		{12, 6},
		{1, 0},
		{0, 0},
		{120, 60},
		{57.88125, 28.88125},
	}
	for _, tt := range tests {
		if got := rules.AfterCorrect(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AfterCorrect(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAfterCorrectReachesZero(t *testing.T) {
	rules := DefaultRules()
	g := rules.InitialGrass
	for i := 0; i < 20 && g > 0; i++ {
		g = rules.AfterCorrect(g)
	}
	if g != 0 {
		t.Errorf("grass = %v after repeated correct answers, want 0", g)
	}
}

func TestAfterWrong(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		in, want float64
	}{
		{100, 120},
		{120, 144},
		{180, 200},
		{200, 200},
		{10, 12},
		{0, 0},
	}
	for _, tt := range tests {
		if got := rules.AfterWrong(tt.in); got != tt.want {
			t.Errorf("AfterWrong(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAfterOffline(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		name  string
		grass float64
		days  int
		want  float64
	}{
		{"three days", 50, 3, 57.88125},
		{"zero days keeps value", 50, 0, 50},
		{"zero days still caps", 144, 0, 100},
		{"capped at initial", 95, 5, 100},
		{"cleared stays cleared", 0, 30, 0},
		{"negative days", 50, -2, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.AfterOffline(tt.grass, tt.days)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AfterOffline(%v, %d) = %v, want %v", tt.grass, tt.days, got, tt.want)
			}
		})
	}
}

func TestThresholds(t *testing.T) {
	rules := DefaultRules()
	if !rules.Passable(9.99) || rules.Passable(10) {
		t.Error("passable threshold should be grass < 10")
	}
	if !rules.Grassy(10) || rules.Grassy(9) {
		t.Error("grassy threshold should be grass >= 10")
	}
	if !rules.BonusEligible(50) || rules.BonusEligible(50.5) {
		t.Error("bonus threshold should be grass <= 50")
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same instant", base, 0},
		{"23 hours", base.Add(23 * time.Hour), 0},
		{"exactly one day", base.Add(24 * time.Hour), 1},
		{"three and a half days", base.Add(84 * time.Hour), 3},
		{"clock went backwards", base.Add(-72 * time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(base, tt.now); got != tt.want {
				t.Errorf("DaysBetween = %d, want %d", got, tt.want)
			}
		})
	}
}
