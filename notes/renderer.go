package notes

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// Style names accepted by NewRenderer.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleAuto  = "auto"
)

// Renderer renders markdown snapshots to ANSI for the preview pane.
type Renderer struct {
	style    ansi.StyleConfig
	wordWrap int
}

func uintPtr(v uint) *uint {
	return &v
}

// NewRenderer creates a renderer with the given style.
// Unknown names fall back to dark; "auto" inspects COLORFGBG.
func NewRenderer(styleName string) *Renderer {
	var style ansi.StyleConfig
	switch ResolveStyle(styleName) {
	case StyleLight:
		style = styles.LightStyleConfig
	default:
		style = styles.DarkStyleConfig
	}

	// the preview pane has its own border
	style.Document.Margin = uintPtr(0)
	style.CodeBlock.Margin = uintPtr(0)

	return &Renderer{style: style}
}

// ResolveStyle maps a style name to StyleDark or StyleLight.
func ResolveStyle(styleName string) string {
	switch styleName {
	case StyleLight:
		return StyleLight
	case StyleAuto:
		return styleFromEnvironment()
	default:
		return StyleDark
	}
}

// styleFromEnvironment reads COLORFGBG ("foreground;background").
// Backgrounds 8-15 are the bright colors and indicate a light terminal.
func styleFromEnvironment() string {
	colorfgbg := os.Getenv("COLORFGBG")
	if colorfgbg == "" {
		return StyleDark
	}

	parts := strings.Split(colorfgbg, ";")
	if len(parts) < 2 {
		return StyleDark
	}

	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return StyleDark
	}
	if bg >= 8 {
		return StyleLight
	}
	return StyleDark
}

// WithWordWrap sets the wrap width (0 means no wrap).
func (r *Renderer) WithWordWrap(cols int) *Renderer {
	r.wordWrap = cols
	return r
}

// Render returns markdown as ANSI text. On failure the raw markdown is returned with the error.
func (r *Renderer) Render(markdown string) (string, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithStyles(r.style),
		glamour.WithWordWrap(r.wordWrap),
	)
	if err != nil {
		return markdown, err
	}

	out, err := tr.Render(markdown)
	if err != nil {
		return markdown, err
	}
	return strings.TrimRight(out, "\n"), nil
}
