package cli

import (
	"github.com/spf13/cobra"
)

var listTypeFilter string

var listCmd = &cobra.Command{
	Use:   "list <domain>",
	Short: "List DNS records of a domain",
	Long:  "List all DNS records of a domain, optionally filtered by record type.",
	Example: "  xdns list example.com\n" +
		"  xdns list example.com -t A",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runList(args[0], listTypeFilter)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listTypeFilter, "type", "t", "", "Filter by record type")
}

func runList(domain, typeFilter string) {
	svc, _ := newService()

	records, err := svc.ListRecords(domain, typeFilter)
	if err != nil {
		fail(err)
	}

	if len(records) == 0 {
		printNotice("Domain %s has no records", domain)
		return
	}

	printRecords(domain, records)
}
