package fitcoach

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	UserMsg   int // User message accent
	Workout   int // Workout plan labels
	Nutrition int // Meal plan labels
	Warning   int // Gateway failures
	Success   int // Toasts
	Muted     int // Status bar, placeholders
	Accent    int // Headings, links
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg:   4,
		Workout:   3,
		Nutrition: 2,
		Warning:   1,
		Success:   2,
		Muted:     8,
		Accent:    5,
	}
}
