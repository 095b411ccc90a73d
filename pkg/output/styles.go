package output

import "github.com/charmbracelet/lipgloss"

// Semantic style names
const (
	StyleHeading = "Heading"
	StylePath    = "Path"
	StyleError   = "Error"
	StyleMuted   = "Muted"
)

var colors = map[string]lipgloss.AdaptiveColor{
	"accent": {Light: "#005F87", Dark: "#5FAFD7"},
	"error":  {Light: "#AF0000", Dark: "#FF5F5F"},
	"muted":  {Light: "#6C6C6C", Dark: "#8A8A8A"},
}

// newStyles builds the style registry on r so color detection follows the
// writer rather than stdout
func newStyles(r *lipgloss.Renderer) map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		StyleHeading: r.NewStyle().Bold(true).Foreground(colors["accent"]),
		StylePath:    r.NewStyle(),
		StyleError:   r.NewStyle().Bold(true).Foreground(colors["error"]),
		StyleMuted:   r.NewStyle().Foreground(colors["muted"]),
	}
}
