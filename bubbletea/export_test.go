package bubbletea

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// DashboardView renders the dashboard page regardless of the active page.
func DashboardView(m Model) string {
	return m.dashboard.view(m.profile, m.Viewport.Width, m.styles)
}

// DashboardFocus returns the index of the selected plan, or -1.
func DashboardFocus(m Model) int {
	return m.dashboard.focus
}

// SetRunning puts the model in a running state.
func SetRunning(m Model) Model {
	m.running = true
	return m
}

// PlanPreview exports planPreview for testing.
func PlanPreview(content string) string {
	return planPreview(content)
}
