package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/supertile/pkg/render"
	"github.com/matzehuels/supertile/pkg/supertile"
	"github.com/matzehuels/supertile/pkg/wire"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - second input
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCore   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleEmpty  = lipgloss.NewStyle().Foreground(colorDim)

	styleInput1 = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	styleInput2 = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	styleOutput = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Layout Output
// =============================================================================

// gateTable renders the core and wire gates as a bordered table.
func gateTable(st *supertile.Supertile) string {
	rows := render.GateRows(st)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(render.GateHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case row == 0:
				return styleCore.Padding(0, 1)
			case rows[row][1] == string(wire.Empty):
				return styleEmpty.Padding(0, 1)
			}
			return base
		})
	return t.Render()
}

// layoutView places the hexagon picture beside the gate table.
func layoutView(st *supertile.Supertile) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		StyleDim.Render(render.Picture()),
		"  ",
		gateTable(st),
	)
}

// pathsView colours the signal glyphs of a path diagram.
func pathsView(diagram string) string {
	var b strings.Builder
	for _, r := range diagram {
		switch r {
		case 'I':
			b.WriteString(styleInput1.Render("I"))
		case 'i':
			b.WriteString(styleInput2.Render("i"))
		case 'O':
			b.WriteString(styleOutput.Render("O"))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// kindsTable lists catalog kinds with their arity and procedure.
func kindsTable(kinds []supertile.Kind) string {
	rows := make([][]string, len(kinds))
	for i, k := range kinds {
		in, out := k.Procedure.Arity()
		rows[i] = []string{k.Name, fmt.Sprintf("%d/%d", in, out), k.Procedure.String(), k.Description}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "In/Out", "Procedure", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if col == 0 {
				return StyleHighlight.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}
