package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Cell glyphs used by Render.
const (
	glyphOpen     = '.'
	glyphWall     = '#'
	glyphStart    = 'S'
	glyphGoal     = 'G'
	glyphRoute    = '*'
	glyphExplored = '+'
)

// Renderer draws a grid with the route and explored cells of a search.
type Renderer struct {
	color    bool
	wall     lipgloss.Style
	start    lipgloss.Style
	goal     lipgloss.Style
	route    lipgloss.Style
	explored lipgloss.Style
	open     lipgloss.Style
}

// NewRenderer returns a renderer; with color false it emits plain ASCII.
func NewRenderer(color bool) *Renderer {
	return &Renderer{
		color:    color,
		wall:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		start:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		goal:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		route:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		explored: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		open:     lipgloss.NewStyle().Faint(true),
	}
}

// Render returns one line per grid row. route and explored may be nil.
func (r *Renderer) Render(g *Grid, start, goal Point, route []Point, explored map[Point]bool) string {
	onRoute := make(map[Point]bool, len(route))
	for _, p := range route {
		onRoute[p] = true
	}

	var b strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := Point{x, y}
			switch {
			case p == start:
				b.WriteString(r.paint(r.start, glyphStart))
			case p == goal:
				b.WriteString(r.paint(r.goal, glyphGoal))
			case g.Walls[p]:
				b.WriteString(r.paint(r.wall, glyphWall))
			case onRoute[p]:
				b.WriteString(r.paint(r.route, glyphRoute))
			case explored[p]:
				b.WriteString(r.paint(r.explored, glyphExplored))
			default:
				b.WriteString(r.paint(r.open, glyphOpen))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Renderer) paint(style lipgloss.Style, glyph rune) string {
	if !r.color {
		return string(glyph)
	}
	return style.Render(string(glyph))
}
