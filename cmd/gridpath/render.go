package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/gridpath/evaluator"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("42")).Bold(true)
	failStyle   = cellStyle.Foreground(lipgloss.Color("241"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	wallStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// renderResults draws one row per algorithm. styled adds color and rounded
// borders; otherwise the table is plain ASCII.
func renderResults(out *evaluator.Outcome, styled bool) string {
	rows := make([][]string, 0, len(out.Results))
	bestRow := -1
	for i, r := range out.Results {
		if out.Best != nil && r.Name == out.Best.Name {
			bestRow = i
		}
		rows = append(rows, []string{
			r.Name,
			formatCost(r),
			strconv.Itoa(r.ExploredNodes),
			strconv.Itoa(max(len(r.Path)-1, 0)),
			fmt.Sprintf("%.3fms", float64(r.Duration.Microseconds())/1000),
			strconv.FormatBool(r.Success),
		})
	}

	t := table.New().
		Headers("Algorithm", "Cost", "Explored", "Steps", "Time", "Success").
		Rows(rows...)
	if !styled {
		return t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(_, _ int) lipgloss.Style { return cellStyle }).
			Render()
	}
	return t.Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row == bestRow:
				return bestStyle
			case !out.Results[row].Success:
				return failStyle
			}
			return cellStyle
		}).
		Render()
}

func formatCost(r search.Result) string {
	if math.IsInf(r.Cost, 1) {
		return "∞"
	}
	return strconv.FormatFloat(r.Cost, 'f', -1, 64)
}

func bestLine(best *search.Result) string {
	if best == nil {
		return "best: none (no algorithm found a path)"
	}
	return fmt.Sprintf("best: %s (cost %s, %d explored)", best.Name, formatCost(*best), best.ExploredNodes)
}

// renderGrid draws g one character per cell:
//
//	S start   G goal   # obstacle   * path   . weight 1   1-9 / + heavier cells
func renderGrid(g *grid.Grid, best *search.Result, styled bool) string {
	onPath := map[grid.Position]bool{}
	if best != nil {
		for _, p := range best.Path {
			onPath[p] = true
		}
	}

	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := grid.Pos(r, c)
			glyph, style := cellGlyph(g, p, onPath[p])
			if styled && style != nil {
				glyph = style.Render(glyph)
			}
			b.WriteString(glyph)
		}
		if r < g.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellGlyph(g *grid.Grid, p grid.Position, onPath bool) (string, *lipgloss.Style) {
	cell := g.Cell(p)
	switch {
	case p == g.Start():
		return "S", &pathStyle
	case p == g.Goal():
		return "G", &pathStyle
	case cell.Obstacle:
		return "#", &wallStyle
	case onPath:
		return "*", &pathStyle
	case cell.Weight == grid.DefaultCell.Weight:
		return ".", nil
	case cell.Weight < 9.5:
		return strconv.Itoa(int(math.Round(cell.Weight))), nil
	}
	return "+", nil
}
