package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/petspa/salonsite/pkg/layout"
)

// Terminal colours (ANSI 256).
var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorBlue  = lipgloss.Color("75")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// statusKind selects the icon in front of a status line.
type statusKind int

const (
	statusSuccess statusKind = iota
	statusError
	statusInfo
)

var statusIcons = map[statusKind]string{
	statusSuccess: lipgloss.NewStyle().Foreground(colorGreen).Render("✓"),
	statusError:   lipgloss.NewStyle().Foreground(colorRed).Render("✗"),
	statusInfo:    lipgloss.NewStyle().Foreground(colorGray).Render("›"),
}

// uiOut receives human-oriented status lines. Machine-readable output goes
// to the command's own writer instead.
var uiOut io.Writer = os.Stdout

func status(kind statusKind, format string, args ...any) {
	fmt.Fprintln(uiOut, statusIcons[kind]+" "+fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...any) { status(statusSuccess, format, args...) }
func printError(format string, args ...any)   { status(statusError, format, args...) }
func printInfo(format string, args ...any)    { status(statusInfo, format, args...) }

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Fprintln(uiOut, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(uiOut, styleKey.Render(key)+" "+StyleValue.Render(value))
}

func printNextStep(description, cmd string) {
	fmt.Fprintln(uiOut, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// profileTable writes the registry as a table with current highlighted.
func profileTable(w io.Writer, current layout.Profile) {
	entries := layout.All()
	rows := make([][]string, len(entries))
	for i, e := range entries {
		mark := ""
		if e.Profile == current {
			mark = "●"
		}
		rows[i] = []string{
			mark,
			string(e.Profile),
			e.Config.Description,
			string(e.Config.Hero),
			string(e.Config.Navigation),
			string(e.Config.Wrapper),
		}
	}

	var (
		header   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
		selected = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
		muted    = lipgloss.NewStyle().Foreground(colorGray)
		plain    = lipgloss.NewStyle()
	)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Profile", "Description", "Hero", "Navigation", "Wrapper").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return header
			case row < len(entries) && entries[row].Profile == current:
				return selected
			case col == 2:
				return muted
			default:
				return plain
			}
		})

	fmt.Fprintln(w, t.Render())
}
