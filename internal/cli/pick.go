package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/petspa/salonsite/pkg/layout"
	"github.com/petspa/salonsite/pkg/palette"
	"github.com/petspa/salonsite/pkg/profile"
	"github.com/petspa/salonsite/pkg/storage"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	previewStyle      = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1).
				Width(46)
)

// pickCommand creates the pick command: an interactive profile and palette
// switcher whose choice the other commands use as their default.
func (c *CLI) pickCommand() *cobra.Command {
	var paletteFlag string

	cmd := &cobra.Command{
		Use:   "pick [profile]",
		Short: "Choose the layout profile and palette",
		Long: `Choose the layout profile and palette used by render and profiles list.

With a profile argument the choice is made directly; otherwise an
interactive list opens. The choice is stored in ~/.config/salonsite.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return profileNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := openPreferences()
			if err != nil {
				return err
			}
			defer prefs.Close()

			if len(args) == 1 {
				return applyPick(cmd.Context(), prefs, args[0], paletteFlag)
			}
			return runPicker(cmd.Context(), prefs)
		},
	}
	cmd.Flags().StringVarP(&paletteFlag, "palette", "p", "", "colour palette to store with the profile")
	return cmd
}

// applyPick stores a profile, and a palette when one is given. It behaves
// like the site's switcher: an unknown profile is rejected and changes
// nothing.
func applyPick(ctx context.Context, st storage.Storage, rawProfile, rawPalette string) error {
	logger := loggerFromContext(ctx)
	ps := profile.New(st, nil, profile.WithLogger(logger))
	ps.Rehydrate(ctx)
	snap, err := ps.SetProfile(ctx, rawProfile)
	if err != nil {
		return err
	}

	pal := palette.NewStore(st, nil, logger)
	pal.Rehydrate(ctx)
	if rawPalette != "" {
		if err := pal.Set(ctx, rawPalette); err != nil {
			return err
		}
	}

	printSuccess("Profile %s", StyleHighlight.Render(string(snap.Profile)))
	printDetail("%s", snap.Config.Description)
	printKeyValue("Palette", pal.Current().Name)
	printNextStep("Export it", "salonsite render -o site.html")
	return nil
}

func runPicker(ctx context.Context, st storage.Storage) error {
	logger := loggerFromContext(ctx)
	ps := profile.New(st, nil, profile.WithLogger(logger))
	ps.Rehydrate(ctx)
	pal := palette.NewStore(st, nil, logger)
	pal.Rehydrate(ctx)

	final, err := tea.NewProgram(newPickModel(ps.Profile(), pal.Current().ID), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}
	m := final.(pickModel)
	if !m.chosen {
		printInfo("Nothing changed")
		return nil
	}
	return applyPick(ctx, st, string(m.entries[m.cursor].Profile), string(m.palettes[m.palCursor].ID))
}

// =============================================================================
// pickModel - Interactive profile selection
// =============================================================================

// pickModel is the bubbletea model for the picker. Up and down move through
// profiles; left and right cycle palettes.
type pickModel struct {
	entries   []layout.Entry
	palettes  []palette.Palette
	cursor    int
	palCursor int
	current   layout.Profile
	chosen    bool
	height    int
	offset    int
}

func newPickModel(current layout.Profile, pal palette.ID) pickModel {
	m := pickModel{
		entries:  layout.All(),
		palettes: palette.All(),
		current:  current,
		height:   14,
	}
	for i, e := range m.entries {
		if e.Profile == current {
			m.cursor = i
		}
	}
	for i, p := range m.palettes {
		if p.ID == pal {
			m.palCursor = i
		}
	}
	return m
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "left", "h":
			m.palCursor = (m.palCursor + len(m.palettes) - 1) % len(m.palettes)
		case "right", "l", "tab":
			m.palCursor = (m.palCursor + 1) % len(m.palettes)
		case "enter":
			m.chosen = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 5)
		if m.cursor >= m.offset+m.height {
			m.offset = m.cursor - m.height + 1
		}
	}
	return m, nil
}

func (m pickModel) View() string {
	var list strings.Builder
	end := min(m.offset+m.height, len(m.entries))
	for i := m.offset; i < end; i++ {
		e := m.entries[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		mark := " "
		if e.Profile == m.current {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %-13s", cursor, mark, e.Profile)
		if i == m.cursor {
			list.WriteString(listSelectedStyle.Render(line))
		} else {
			list.WriteString(listNormalStyle.Render(line))
		}
		list.WriteString("\n")
	}

	sel := m.entries[m.cursor]
	var preview strings.Builder
	preview.WriteString(StyleTitle.Render(sel.Config.Name))
	preview.WriteString("\n")
	preview.WriteString(listDimStyle.Render(sel.Config.Description))
	preview.WriteString("\n\n")
	for _, kv := range [][2]string{
		{"hero", string(sel.Config.Hero)},
		{"services", string(sel.Config.Services)},
		{"gallery", string(sel.Config.Gallery)},
		{"team", string(sel.Config.Team)},
		{"navigation", string(sel.Config.Navigation)},
		{"wrapper", string(sel.Config.Wrapper)},
		{"flow", string(sel.Config.ContentFlow)},
	} {
		preview.WriteString(fmt.Sprintf("%-11s %s\n", listDimStyle.Render(kv[0]), kv[1]))
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Select Layout Profile"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ profile  ←/→ palette  ⏎ select  q quit"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", previewStyle.Render(preview.String())))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  palette: %s", StyleHighlight.Render(m.palettes[m.palCursor].Name)))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("   [%d/%d]", m.cursor+1, len(m.entries))))
	return b.String()
}
