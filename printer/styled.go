package printer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/typesig/apisearch/engine"
)

// Styled renders results with lipgloss, coloring each line by distance
// band the way a reader scans a diff: exact matches jump out, loose
// matches recede.
type Styled struct {
	Out io.Writer

	exact lipgloss.Style
	near  lipgloss.Style
	loose lipgloss.Style
	dim   lipgloss.Style
}

// NewStyled builds a Styled printer with the default palette.
func NewStyled(out io.Writer) Styled {
	return Styled{
		Out:   out,
		exact: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true),
		near:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		loose: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		dim:   lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")),
	}
}

// Print writes one colored line per result.
func (s Styled) Print(results []engine.Result) error {
	for _, r := range results {
		style := s.styleFor(bandOf(r))
		line := fmt.Sprintf("%-20s %3d  %s", r.AssemblyName, r.Distance, SignatureText(r.Api))
		if _, err := fmt.Fprintln(s.Out, style.Render(line)); err != nil {
			return err
		}
	}
	return nil
}

func (s Styled) styleFor(b distanceBand) lipgloss.Style {
	switch b {
	case exactBand:
		return s.exact
	case nearBand:
		return s.near
	default:
		return s.loose
	}
}
