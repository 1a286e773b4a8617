package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/lite-lake/xdns/internal/providers/dns"
)

const (
	ColorPrimary   = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorSecondary = "#6B7280"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimary))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorSecondary))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorPrimary))
)

func printSuccess(format string, args ...any) {
	fmt.Println(SuccessStyle.Render("✓ ") + fmt.Sprintf(format, args...))
}

func printNotice(format string, args ...any) {
	fmt.Println(WarningStyle.Render(fmt.Sprintf(format, args...)))
}

// printRecords renders records in the format picked by -o.
func printRecords(domain string, records []dns.Record) {
	switch OutputFormat {
	case "yaml":
		printYAML(records)
	default:
		printRecordTable(domain, records)
	}
}

func printRecordTable(domain string, records []dns.Record) {
	fmt.Println(TitleStyle.Render(domain) + " records:")
	fmt.Println(HeaderStyle.Render(fmt.Sprintf("  %-24s %-6s %-40s %s", "NAME", "TYPE", "VALUE", "TTL")))
	for _, r := range records {
		ttl := "-"
		if r.TTL > 0 {
			ttl = strconv.Itoa(r.TTL)
		}
		fmt.Printf("  %-24s %-6s %-40s %s\n", r.Name, r.Type, r.Value, ttl)
	}
}

func printYAML(v any) {
	data, err := yaml.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling output: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
