package cli

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lite-lake/xdns/internal/providers/dns"
)

var browseTypeFilter string

var browseCmd = &cobra.Command{
	Use:   "browse <domain>",
	Short: "Browse DNS records interactively",
	Long:  "Browse a domain's DNS records in a scrollable read-only view.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBrowse(args[0], browseTypeFilter)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVarP(&browseTypeFilter, "type", "t", "", "Filter by record type")
}

var (
	browseTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color(ColorPrimary)).
				Padding(0, 1)

	browseSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorPrimary)).
				Bold(true)

	browseHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondary)).
			MarginTop(1)
)

type browseModel struct {
	domain  string
	records []dns.Record
	cursor  int
	offset  int
	height  int
}

func newBrowseModel(domain string, records []dns.Record) browseModel {
	return browseModel{
		domain:  domain,
		records: records,
		height:  24,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.records)-1 {
				m.cursor++
			}
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.records) - 1
		}
	}

	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	return m, nil
}

func (m browseModel) visibleRows() int {
	// title, header and help take four rows
	rows := m.height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m browseModel) View() string {
	s := browseTitleStyle.Render(fmt.Sprintf("%s — %d records", m.domain, len(m.records))) + "\n"
	s += HeaderStyle.Render(fmt.Sprintf("  %-24s %-6s %-40s %s", "NAME", "TYPE", "VALUE", "TTL")) + "\n"

	end := m.offset + m.visibleRows()
	if end > len(m.records) {
		end = len(m.records)
	}
	for i := m.offset; i < end; i++ {
		r := m.records[i]
		ttl := "-"
		if r.TTL > 0 {
			ttl = strconv.Itoa(r.TTL)
		}
		line := fmt.Sprintf("%-24s %-6s %-40s %s", r.Name, r.Type, r.Value, ttl)
		if i == m.cursor {
			s += browseSelectedStyle.Render("> "+line) + "\n"
		} else {
			s += "  " + line + "\n"
		}
	}

	s += browseHelpStyle.Render("↑/↓ move · g/G jump · q quit")
	return s
}

func runBrowse(domain, typeFilter string) {
	svc, _ := newService()

	records, err := svc.ListRecords(domain, typeFilter)
	if err != nil {
		fail(err)
	}
	if len(records) == 0 {
		printNotice("Domain %s has no records", domain)
		return
	}

	if _, err := tea.NewProgram(newBrowseModel(domain, records)).Run(); err != nil {
		fail(err)
	}
}
