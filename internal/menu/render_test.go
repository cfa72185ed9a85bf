package menu

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/habitual/internal/models"
)

func TestRenderHabits(t *testing.T) {
	var buf bytes.Buffer
	renderHabits(&buf, nil)
	assert.Contains(t, buf.String(), "No habits found")

	buf.Reset()
	renderHabits(&buf, []models.HabitRef{{ID: 3, Name: "Swim"}})
	assert.Contains(t, buf.String(), "- Swim (ID: 3)")
}

func TestRenderMaxStreak(t *testing.T) {
	var buf bytes.Buffer
	renderMaxStreak(&buf, models.Streak{}, false)
	assert.Contains(t, buf.String(), "No completions")

	buf.Reset()
	renderMaxStreak(&buf, models.Streak{Username: "bob", HabitName: "Swim", Count: 21}, true)
	assert.Contains(t, buf.String(), "Swim by bob with 21 completions")
}

func TestRenderProfile(t *testing.T) {
	var buf bytes.Buffer
	renderProfile(&buf, models.Profile{
		Username:  "alice",
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local),
		Habits:    []models.HabitCount{{HabitName: "Read", Count: 4}},
	})

	out := buf.String()
	assert.Contains(t, out, "Profile for alice")
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "Habit: Read | Streak: 4 completions")
	assert.NotContains(t, out, "Email")
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, models.Summary{TotalHabits: 2, TotalCompletions: 7, CompletedToday: 1})

	out := buf.String()
	assert.Contains(t, out, "Total habits: 2")
	assert.Contains(t, out, "Total completions: 7")
	assert.Contains(t, out, "Completions today: 1")
}

func TestHabitOptions(t *testing.T) {
	opts := habitOptions([]models.HabitRef{{ID: 1, Name: "Walk"}, {ID: 9, Name: "Read"}})
	if assert.Len(t, opts, 2) {
		assert.Equal(t, "Read (ID: 9)", opts[1].Key)
		assert.Equal(t, int64(9), opts[1].Value)
	}
	assert.Len(t, periodicityOptions(), len(models.Periodicities))
}
