package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lite-lake/xdns/internal/domain/entity"
)

var (
	deleteRecordType string
	deleteYes        bool
)

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete DNS records",
	Long: "Delete the records matching the name and type. The type defaults to A;\n" +
		"other types are never touched implicitly.",
	Example: "  xdns delete www.example.com\n" +
		"  xdns rm www.example.com -t AAAA",
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runDelete(args[0], deleteRecordType, deleteYes)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVarP(&deleteRecordType, "type", "t", string(entity.DefaultRecordType), "Record type")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation prompt")
}

func runDelete(fullDomain, recordType string, autoApprove bool) {
	svc, _ := newService()

	matches, err := svc.FindRecords(fullDomain, recordType)
	if err != nil {
		fail(err)
	}

	if len(matches) > 1 && !autoApprove {
		fmt.Printf("%d %s records match %s:\n", len(matches), recordType, fullDomain)
		for _, r := range matches {
			fmt.Printf("  %s -> %s\n", r.Name, r.Value)
		}
		if !Confirm("Delete all of them?", false) {
			fmt.Println("Cancelled.")
			return
		}
	}

	deleted, err := svc.DeleteRecords(fullDomain, recordType)
	if err != nil {
		fail(err)
	}

	if deleted == 1 {
		printSuccess("Deleted %s record %s", recordType, fullDomain)
	} else {
		printSuccess("Deleted %d %s records %s", deleted, recordType, fullDomain)
	}
}
