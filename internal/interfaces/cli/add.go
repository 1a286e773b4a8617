package cli

import (
	"github.com/spf13/cobra"

	"github.com/lite-lake/xdns/internal/domain/entity"
)

var (
	addRecordType string
	addTTL        int
)

var addCmd = &cobra.Command{
	Use:   "add <name> <value>",
	Short: "Add a DNS record",
	Long:  "Add a DNS record. The name is the full record name; the zone is derived from it.",
	Example: "  xdns add www.example.com 1.2.3.4\n" +
		"  xdns add blog.example.com cdn.example.com -t CNAME",
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runAdd(args[0], args[1], addRecordType, addTTL)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addRecordType, "type", "t", string(entity.DefaultRecordType), "Record type")
	addCmd.Flags().IntVar(&addTTL, "ttl", 0, "Record TTL in seconds (0 = provider default)")
}

func runAdd(fullDomain, value, recordType string, ttl int) {
	svc, _ := newService()

	record, err := svc.AddRecord(fullDomain, value, recordType, ttl)
	if err != nil {
		fail(err)
	}

	printSuccess("Added %s record %s -> %s", record.Type, fullDomain, record.Value)
}
