package output

import (
	"github.com/charmbracelet/glamour"
	"github.com/rpgo/dividend-projector/internal/domain"
)

const defaultConsoleWidth = 120

// ConsoleFormatter renders the markdown report for a terminal.
type ConsoleFormatter struct {
	Style string // glamour standard style; empty means "notty"
	Width int
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	md, err := MarkdownFormatter{}.Format(results)
	if err != nil {
		return nil, err
	}
	style, width := c.Style, c.Width
	if style == "" {
		style = "notty"
	}
	if width <= 0 {
		width = defaultConsoleWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	out, err := r.RenderBytes(md)
	if err != nil {
		return nil, err
	}
	return out, nil
}
