package fitcoach

import (
	"fmt"
	"strings"
)

// Intent is the category assigned to an assistant reply.
type Intent int

const (
	IntentOther Intent = iota
	IntentWorkout
	IntentNutrition
)

// String returns "other", "workout" or "nutrition".
func (i Intent) String() string {
	switch i {
	case IntentWorkout:
		return "workout"
	case IntentNutrition:
		return "nutrition"
	default:
		return "other"
	}
}

// Lexicon is a set of lower-case keywords indicating one category.
type Lexicon []string

var (
	defaultWorkout = Lexicon{
		"workout", "exercise", "gym", "lift", "hiit", "cardio", "strength",
		"routine", "sets", "reps", "weekly grid", "day 1", "mon -", "tue -",
		"wed -", "thu -", "fri -", "sat -", "sun -", "push-up", "squat",
		"dumbbell", "circuit", "warm-up", "cool-down",
	}
	defaultNutrition = Lexicon{
		"diet", "food", "meal", "nutrition", "snack", "calorie", "protein",
		"kcal", "carb", "recipe", "breakfast", "lunch", "dinner", "meal plan",
		"yogurt", "chicken", "quinoa", "oats", "macros",
	}
)

// DefaultWorkoutLexicon returns a copy of the built-in workout keywords.
func DefaultWorkoutLexicon() Lexicon {
	return append(Lexicon(nil), defaultWorkout...)
}

// DefaultNutritionLexicon returns a copy of the built-in nutrition keywords.
func DefaultNutritionLexicon() Lexicon {
	return append(Lexicon(nil), defaultNutrition...)
}

// Scores holds the number of distinct keywords matched per category.
type Scores struct {
	Workout   int
	Nutrition int
}

// Classifier assigns an Intent to text by counting lexicon keywords.
// The zero value classifies everything as IntentOther; use NewClassifier or
// DefaultClassifier.
type Classifier struct {
	workout   Lexicon
	nutrition Lexicon
}

var defaultClassifier = &Classifier{workout: defaultWorkout, nutrition: defaultNutrition}

// DefaultClassifier returns the classifier built from the default lexicons.
func DefaultClassifier() *Classifier {
	return defaultClassifier
}

// NewClassifier builds a Classifier from the given lexicons. Keywords are
// trimmed and lower-cased and duplicates are dropped. An empty keyword would
// match every text and is rejected.
func NewClassifier(workout, nutrition Lexicon) (*Classifier, error) {
	w, err := normalize(workout, "workout")
	if err != nil {
		return nil, err
	}
	n, err := normalize(nutrition, "nutrition")
	if err != nil {
		return nil, err
	}
	return &Classifier{workout: w, nutrition: n}, nil
}

func normalize(lex Lexicon, category string) (Lexicon, error) {
	out := make(Lexicon, 0, len(lex))
	seen := make(map[string]bool, len(lex))
	for i, kw := range lex {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			return nil, fmt.Errorf("%s keyword %d is empty: %w", category, i, ErrValidation)
		}
		if seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out, nil
}

// Score counts, for each category, how many distinct keywords occur as a
// substring of the lower-cased text. Repeats of a keyword count once.
func (c *Classifier) Score(text string) Scores {
	text = strings.ToLower(text)
	return Scores{
		Workout:   count(c.workout, text),
		Nutrition: count(c.nutrition, text),
	}
}

func count(lex Lexicon, text string) int {
	n := 0
	for _, kw := range lex {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// Classify returns the category with the strictly higher nonzero score.
// Ties, including 0-0, yield IntentOther.
func (c *Classifier) Classify(text string) Intent {
	s := c.Score(text)
	switch {
	case s.Workout > s.Nutrition && s.Workout > 0:
		return IntentWorkout
	case s.Nutrition > s.Workout && s.Nutrition > 0:
		return IntentNutrition
	default:
		return IntentOther
	}
}

// Classify classifies text with the default lexicons.
func Classify(text string) Intent {
	return defaultClassifier.Classify(text)
}
