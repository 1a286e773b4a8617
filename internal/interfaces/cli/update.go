package cli

import (
	"github.com/spf13/cobra"

	"github.com/lite-lake/xdns/internal/domain/entity"
)

var (
	updateRecordType string
	updateTTL        int
)

var updateCmd = &cobra.Command{
	Use:     "update <name> <value>",
	Aliases: []string{"set"},
	Short:   "Update a DNS record, creating it when absent",
	Long:    "Update a DNS record's value. A record that does not exist yet is created.",
	Example: "  xdns update www.example.com 5.6.7.8\n" +
		"  xdns set www.example.com newcdn.example.com -t CNAME",
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runUpdate(args[0], args[1], updateRecordType, updateTTL)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVarP(&updateRecordType, "type", "t", string(entity.DefaultRecordType), "Record type")
	updateCmd.Flags().IntVar(&updateTTL, "ttl", 0, "Record TTL in seconds (0 = keep/provider default)")
}

func runUpdate(fullDomain, value, recordType string, ttl int) {
	svc, _ := newService()

	record, created, err := svc.UpsertRecord(fullDomain, value, recordType, ttl)
	if err != nil {
		fail(err)
	}

	if created {
		printSuccess("Record did not exist, created %s %s -> %s", record.Type, fullDomain, record.Value)
	} else {
		printSuccess("Updated %s record %s -> %s", record.Type, fullDomain, record.Value)
	}
}
