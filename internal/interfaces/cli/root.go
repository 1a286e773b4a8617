package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/xdns/internal/application/dnsops"
	"github.com/lite-lake/xdns/internal/config"
	"github.com/lite-lake/xdns/internal/providers/dns"
)

var (
	ProviderFlag string
	OutputFormat string
	ShowVersion  bool
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "xdns",
	Short: "Manage DNS records across providers",
	Long: "xdns is a CLI tool for managing DNS records across multiple hosting\n" +
		"providers (aliyun, cloudflare, dnspod) through one uniform surface.\n\n" +
		"The provider is selected by -p/--provider, falling back to the\n" +
		"DNS_PROVIDER environment variable, then to aliyun. Credentials are\n" +
		"read from provider-specific environment variables; run\n" +
		"\"xdns providers\" to see them.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if ShowVersion {
			fmt.Println(Version)
			os.Exit(0)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&ProviderFlag, "provider", "p", "", "DNS provider (overrides DNS_PROVIDER)")
	rootCmd.PersistentFlags().StringVarP(&OutputFormat, "output", "o", "table", "Output format (table/yaml)")
	rootCmd.PersistentFlags().BoolVarP(&ShowVersion, "version", "v", false, "Show version information")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// run functions exit themselves; only parse/usage errors reach here
		os.Exit(2)
	}
}

// newService resolves the provider configuration and constructs the
// backend. Configuration failures abort before any network traffic.
func newService() (*dnsops.Service, *config.ProviderConfig) {
	cfg, err := config.Resolve(ProviderFlag)
	if err != nil {
		fail(err)
	}

	provider, err := dns.NewFactory().Create(cfg)
	if err != nil {
		fail(err)
	}

	return dnsops.NewService(provider), cfg
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+err.Error())
	os.Exit(1)
}
