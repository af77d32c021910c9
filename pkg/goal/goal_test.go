package goal

import (
	"testing"
	"time"

	"github.com/budgetwise/budgetwise/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestGoal_ProgressPercent(t *testing.T) {
	tests := []struct {
		name    string
		target  float64
		current float64
		want    float64
	}{
		{"halfway", 10000, 5000, 50},
		{"overshoot clamps to 100", 10000, 12000, 100},
		{"nothing saved", 10000, 0, 0},
		{"zero target counts as done", 0, 0, 100},
		{"zero target with negative progress", 0, -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Goal{TargetAmount: tt.target, CurrentAmount: tt.current}
			assert.InDelta(t, tt.want, g.ProgressPercent(), 1e-9)
		})
	}
}

func TestGoal_NeededPerDay(t *testing.T) {
	today := utils.NewDate(2024, time.March, 1)

	tests := []struct {
		name     string
		goal     Goal
		want     float64
	}{
		{
			name: "spread over remaining days",
			goal: Goal{TargetAmount: 10000, CurrentAmount: 4000, Deadline: utils.NewDate(2024, time.March, 31)},
			want: 200, // 6000 over 30 days
		},
		{
			name: "deadline today uses a one-day horizon",
			goal: Goal{TargetAmount: 500, CurrentAmount: 100, Deadline: today},
			want: 400,
		},
		{
			name: "past deadline uses a one-day horizon",
			goal: Goal{TargetAmount: 500, CurrentAmount: 100, Deadline: utils.NewDate(2024, time.February, 1)},
			want: 400,
		},
		{
			name: "already reached",
			goal: Goal{TargetAmount: 500, CurrentAmount: 600, Deadline: utils.NewDate(2024, time.March, 31)},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.goal.NeededPerDay(today), 1e-9)
		})
	}
}

func TestGoal_DaysRemaining(t *testing.T) {
	today := utils.NewDate(2024, time.March, 1)
	g := Goal{Deadline: utils.NewDate(2024, time.March, 11)}
	assert.Equal(t, 10, g.DaysRemaining(today))

	overdue := Goal{Deadline: utils.NewDate(2024, time.February, 28)}
	assert.Equal(t, -2, overdue.DaysRemaining(today))
}
