package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartscript/pkg/pipeline"
	"github.com/matzehuels/chartscript/pkg/store"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// ChartListModel - Interactive chart selection
// =============================================================================

// ChartListModel is the bubbletea model for picking a stored chart.
type ChartListModel struct {
	Charts   []store.Summary
	Cursor   int
	Selected *store.Summary
	Height   int
	Offset   int
}

// NewChartListModel creates a chart list model.
func NewChartListModel(charts []store.Summary) ChartListModel {
	return ChartListModel{Charts: charts, Height: 15}
}

func (m ChartListModel) Init() tea.Cmd {
	return nil
}

func (m ChartListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Charts)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Charts) == 0 {
				return m, tea.Quit
			}
			chart := m.Charts[m.Cursor]
			m.Selected = &chart
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m ChartListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chart"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Charts))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		ch := m.Charts[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		title := ch.Title
		if title == "" {
			title = "—"
		}
		rows = append(rows, []string{cursor, ch.ID, title, formatRelativeTime(ch.UpdatedAt, time.Now())})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Chart", "Title", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return headerStyle
			}
			base := lipgloss.NewStyle()
			if col == 3 {
				base = base.Foreground(colorDim)
			}
			if m.Offset+row == m.Cursor {
				if col == 3 {
					return base.Foreground(colorGray).Bold(true)
				}
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Charts))))

	return b.String()
}

// formatRelativeTime renders t relative to now; the zero time renders as
// a dash.
func formatRelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "—"
	}
	diff := now.Sub(t)
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}

// =============================================================================
// pick command
// =============================================================================

// pickCommand lets the user choose a stored chart and renders it.
func (c *CLI) pickCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		plotVar:   pipeline.DefaultPlotVar,
		assetBase: pipeline.DefaultAssetBase,
	}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a stored chart interactively and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}

			var charts []store.Summary
			err := c.withStore(ctx, func(st store.Store) error {
				var err error
				charts, err = st.List(ctx)
				return err
			})
			if err != nil {
				return err
			}
			if len(charts) == 0 {
				printInfo("No stored charts")
				printNextStep("Add one with", appName+" charts import chart.toml")
				return nil
			}

			final, err := tea.NewProgram(NewChartListModel(charts), tea.WithContext(ctx)).Run()
			if err != nil {
				return fmt.Errorf("chart picker: %w", err)
			}
			picked := final.(ChartListModel).Selected
			if picked == nil {
				return nil
			}
			printKeyValue("Chart", picked.ID)
			return c.runRender(ctx, picked.ID, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): js (default), html, dot, svg")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the script cache")

	return cmd
}
