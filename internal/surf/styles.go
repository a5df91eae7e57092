package surf

import "github.com/charmbracelet/lipgloss"

var paneBorderColor = lipgloss.Color("240") // dim gray

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	breadcrumbStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	breadcrumbActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Bold(true)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Padding(1, 2)

	fatalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			Padding(1, 2)
)

// DefaultSplitStyles returns the styling used for the split-mode regions
// when the caller supplies none.
func DefaultSplitStyles() SplitStyles {
	return SplitStyles{
		Body: lipgloss.NewStyle(),
		Main: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(paneBorderColor),
		Detail: lipgloss.NewStyle(),
	}
}

// renderPlaceholder fills a region with a dim message, sized to fit.
func renderPlaceholder(message string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		Render(placeholderStyle.Render("— " + message))
}

// renderFatal renders a fatal configuration error full-region. The message
// names the offending screen so the author can fix the registration.
func renderFatal(err error, width, height int) string {
	msg := fatalStyle.Render("navigation error: " + err.Error())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
