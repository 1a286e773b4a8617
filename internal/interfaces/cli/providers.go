package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lite-lake/xdns/internal/config"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List supported providers and their credential variables",
	Run: func(cmd *cobra.Command, args []string) {
		runProviders()
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders() {
	selected := strings.ToLower(ProviderFlag)
	if selected == "" {
		selected = strings.ToLower(os.Getenv(config.ProviderEnvVar))
	}
	if selected == "" {
		selected = config.DefaultProvider
	}

	title := cases.Title(language.English)
	for _, name := range config.SupportedProviders() {
		marker := "  "
		line := title.String(name)
		if name == selected {
			marker = SuccessStyle.Render("* ")
			line = ValueStyle.Render(line)
		}
		fmt.Println(marker + line)
		for _, envVar := range config.CredentialEnvVars(name) {
			state := ErrorStyle.Render("unset")
			if os.Getenv(envVar) != "" {
				state = SuccessStyle.Render("set")
			}
			fmt.Printf("    %-28s %s\n", envVar, state)
		}
	}
}
