package training

import (
	"strings"

	"pet-wellness/internal/domain/validate"
)

// @Enum habit, skill
type GoalType string

const (
	TypeHabit GoalType = "habit"
	TypeSkill GoalType = "skill"
)

type Goal struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`

	Title        string   `json:"title"`
	Type         GoalType `json:"type"`
	TargetCount  int      `json:"targetCount"`
	CurrentCount int      `json:"currentCount"`
	Completed    bool     `json:"completed"`
}

func (g Goal) RecordID() string    { return g.ID }
func (g Goal) RecordScope() string { return g.PetID }

func (g Goal) Validate() error {
	if err := validate.First(
		validate.Required("petId", g.PetID),
		validate.Required("title", g.Title),
		validate.OneOf("type", g.Type, TypeHabit, TypeSkill),
	); err != nil {
		return err
	}
	if g.TargetCount < 1 {
		return validate.Invalid("targetCount must be at least 1")
	}
	if g.CurrentCount < 0 {
		return validate.Invalid("currentCount must not be negative")
	}
	return nil
}

// Progress incrementa el contador; completed queda fijo una vez alcanzado el target.
func (g Goal) Progress() Goal {
	g.CurrentCount++
	if g.CurrentCount >= g.TargetCount {
		g.Completed = true
	}
	return g
}

// Ratio devuelve el avance en [0, 1].
func (g Goal) Ratio() float64 {
	if g.TargetCount <= 0 {
		return 0
	}
	r := float64(g.CurrentCount) / float64(g.TargetCount)
	if r > 1 {
		return 1
	}
	return r
}

func (g Goal) normalized() Goal {
	g.Title = strings.TrimSpace(g.Title)
	if g.CurrentCount >= g.TargetCount {
		g.Completed = true
	}
	return g
}
