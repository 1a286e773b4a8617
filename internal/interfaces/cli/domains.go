package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List domains visible to the configured credentials",
	Run: func(cmd *cobra.Command, args []string) {
		runDomains()
	},
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}

func runDomains() {
	svc, cfg := newService()

	domains, err := svc.ListDomains()
	if err != nil {
		fail(err)
	}

	if len(domains) == 0 {
		printNotice("No domains found for provider %s", cfg.Provider)
		return
	}

	if OutputFormat == "yaml" {
		printYAML(domains)
		return
	}

	fmt.Println(TitleStyle.Render(cfg.Provider) + " domains:")
	for _, d := range domains {
		fmt.Printf("  %s\n", d)
	}
}
