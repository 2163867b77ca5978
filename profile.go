package fitcoach

import (
	"fmt"
	"strings"
)

// Sex is the profile's stated sex.
type Sex string

const (
	SexFemale Sex = "Female"
	SexMale   Sex = "Male"
	SexOther  Sex = "Other"
)

// Goal is the profile's main fitness goal.
type Goal string

const (
	GoalWeightLoss     Goal = "Weight Loss"
	GoalMuscleGain     Goal = "Muscle Gain"
	GoalEndurance      Goal = "Endurance"
	GoalGeneralFitness Goal = "General Fitness"
)

// Age bounds accepted by Profile.Validate.
const (
	MinAge = 10
	MaxAge = 100
)

var (
	sexes = []Sex{SexFemale, SexMale, SexOther}
	goals = []Goal{GoalWeightLoss, GoalMuscleGain, GoalEndurance, GoalGeneralFitness}
)

// Profile describes the user the assistant tailors its replies to.
// The core interpolates it as given; callers that accept user input run
// Validate first.
type Profile struct {
	Name string
	Age  int
	Sex  Sex
	Goal Goal
}

// DefaultProfile returns the profile used when the user supplies none.
func DefaultProfile() Profile {
	return Profile{
		Name: "Swastika",
		Age:  20,
		Sex:  SexFemale,
		Goal: GoalWeightLoss,
	}
}

// Validate checks the age range and enum membership.
func (p Profile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return fmt.Errorf("age must be in [%d, %d], got %d: %w", MinAge, MaxAge, p.Age, ErrValidation)
	}
	if _, err := ParseSex(string(p.Sex)); err != nil {
		return err
	}
	if _, err := ParseGoal(string(p.Goal)); err != nil {
		return err
	}
	return nil
}

// ParseSex matches s against the known sexes, ignoring case and surrounding space.
func ParseSex(s string) (Sex, error) {
	for _, v := range sexes {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown sex %q: %w", s, ErrValidation)
}

// ParseGoal matches s against the known goals, ignoring case and surrounding space.
func ParseGoal(s string) (Goal, error) {
	for _, v := range goals {
		if strings.EqualFold(strings.TrimSpace(s), string(v)) {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown goal %q: %w", s, ErrValidation)
}
