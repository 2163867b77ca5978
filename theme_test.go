package fitcoach_test

import (
	"testing"

	"github.com/fwojciec/fitcoach"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := fitcoach.DefaultTheme()

	assert.Equal(t, 4, theme.UserMsg)
	assert.Equal(t, 3, theme.Workout)
	assert.Equal(t, 2, theme.Nutrition)
	assert.Equal(t, 1, theme.Warning)
	assert.Equal(t, 2, theme.Success)
	assert.Equal(t, 8, theme.Muted)
	assert.Equal(t, 5, theme.Accent)
}
