// Package yaml loads classifier lexicons from YAML files.
//
// A lexicon file names the keywords of each category:
//
//	workout: [workout, gym, squat]
//	nutrition: [meal, protein]
//
// A category that is omitted keeps its default lexicon. An explicitly empty
// list disables the category.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/fitcoach"
	"gopkg.in/yaml.v3"
)

// lexiconFile is the on-disk format.
type lexiconFile struct {
	Workout   *[]string `yaml:"workout"`
	Nutrition *[]string `yaml:"nutrition"`
}

// ParseClassifier builds a classifier from YAML data. Unknown fields are
// rejected.
func ParseClassifier(data []byte) (*fitcoach.Classifier, error) {
	var f lexiconFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse lexicon: %w: %w", fitcoach.ErrValidation, err)
	}

	workout := fitcoach.DefaultWorkoutLexicon()
	if f.Workout != nil {
		workout = *f.Workout
	}
	nutrition := fitcoach.DefaultNutritionLexicon()
	if f.Nutrition != nil {
		nutrition = *f.Nutrition
	}

	c, err := fitcoach.NewClassifier(workout, nutrition)
	if err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	return c, nil
}

// LoadClassifier reads a lexicon file and builds a classifier from it.
func LoadClassifier(path string) (*fitcoach.Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	c, err := ParseClassifier(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
