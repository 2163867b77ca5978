package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/fitcoach"
	"github.com/fwojciec/fitcoach/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClassifier(t *testing.T) {
	t.Parallel()

	t.Run("both categories", func(t *testing.T) {
		t.Parallel()
		c, err := yaml.ParseClassifier([]byte("workout: [kettlebell, Swing]\nnutrition:\n  - smoothie\n"))
		require.NoError(t, err)
		assert.Equal(t, fitcoach.Scores{Workout: 2}, c.Score("kettlebell swing"))
		assert.Equal(t, fitcoach.IntentNutrition, c.Classify("green smoothie"))
		// Default keywords no longer apply.
		assert.Equal(t, fitcoach.IntentOther, c.Classify("gym"))
	})

	t.Run("omitted category keeps default", func(t *testing.T) {
		t.Parallel()
		c, err := yaml.ParseClassifier([]byte("workout: [kettlebell]\n"))
		require.NoError(t, err)
		assert.Equal(t, fitcoach.IntentNutrition, c.Classify("Breakfast: oats"))
		assert.Equal(t, fitcoach.IntentOther, c.Classify("gym"))
	})

	t.Run("empty document is all defaults", func(t *testing.T) {
		t.Parallel()
		c, err := yaml.ParseClassifier(nil)
		require.NoError(t, err)
		assert.Equal(t, fitcoach.DefaultClassifier().Score("Day 1: squat, lunch"), c.Score("Day 1: squat, lunch"))
	})

	t.Run("explicit empty list disables category", func(t *testing.T) {
		t.Parallel()
		c, err := yaml.ParseClassifier([]byte("nutrition: []\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, c.Score("Breakfast: oats").Nutrition)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		_, err := yaml.ParseClassifier([]byte("workouts: [gym]\n"))
		assert.ErrorIs(t, err, fitcoach.ErrValidation)
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		t.Parallel()
		_, err := yaml.ParseClassifier([]byte("workout: [gym\n"))
		assert.ErrorIs(t, err, fitcoach.ErrValidation)
	})

	t.Run("blank keyword rejected", func(t *testing.T) {
		t.Parallel()
		_, err := yaml.ParseClassifier([]byte("workout: [gym, \"  \"]\n"))
		assert.ErrorIs(t, err, fitcoach.ErrValidation)
	})
}

func TestLoadClassifier(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "lexicon.yaml")
		require.NoError(t, os.WriteFile(path, []byte("workout: [yoga]\n"), 0o600))

		c, err := yaml.LoadClassifier(path)
		require.NoError(t, err)
		assert.Equal(t, fitcoach.IntentWorkout, c.Classify("Morning yoga flow"))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := yaml.LoadClassifier(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("error names the file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("extra: true\n"), 0o600))

		_, err := yaml.LoadClassifier(path)
		require.ErrorIs(t, err, fitcoach.ErrValidation)
		assert.Contains(t, err.Error(), "bad.yaml")
	})
}
