// Package config resolves which DNS provider to talk to and with which
// credentials, from the CLI flag and process environment.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lite-lake/xdns/internal/domain"
)

const (
	// ProviderEnvVar selects the provider when no -p flag is given.
	ProviderEnvVar = "DNS_PROVIDER"

	// DefaultProvider is used when neither the flag nor DNS_PROVIDER is set.
	DefaultProvider = "aliyun"
)

// ProviderConfig is built once per invocation and handed to the provider
// factory. Credentials is keyed by the factory's credential names, not by
// environment variable names.
type ProviderConfig struct {
	Provider    string
	Credentials map[string]string
}

type credentialSpec struct {
	// key is the credential name the provider factory expects.
	key string
	// envVars are accepted sources, first non-empty wins.
	envVars []string
}

var providerSpecs = map[string][]credentialSpec{
	"aliyun": {
		{key: "access_key_id", envVars: []string{"ALIYUN_ACCESS_KEY_ID"}},
		{key: "access_key_secret", envVars: []string{"ALIYUN_ACCESS_KEY_SECRET"}},
	},
	"cloudflare": {
		{key: "api_token", envVars: []string{"CLOUDFLARE_API_TOKEN"}},
	},
	"dnspod": {
		{key: "secret_id", envVars: []string{"DNSPOD_SECRET_ID"}},
		{key: "secret_key", envVars: []string{"DNSPOD_SECRET_KEY"}},
	},
}

// dnspodCombinedTokenVar carries "id,token" in one variable, the format
// DNSPod's legacy token API hands out. It substitutes for the split pair.
const dnspodCombinedTokenVar = "DNSPOD_API_TOKEN"

// Resolve builds the ProviderConfig for this invocation. flagProvider is
// the -p/--provider value and overrides DNS_PROVIDER; an empty string
// falls through to the environment, then to DefaultProvider.
func Resolve(flagProvider string) (*ProviderConfig, error) {
	name := strings.ToLower(strings.TrimSpace(flagProvider))
	if name == "" {
		name = strings.ToLower(strings.TrimSpace(os.Getenv(ProviderEnvVar)))
	}
	if name == "" {
		name = DefaultProvider
	}

	specs, ok := providerSpecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %s)",
			domain.ErrUnknownProvider, name, strings.Join(SupportedProviders(), ", "))
	}

	creds := make(map[string]string, len(specs))
	var missing []string
	for _, spec := range specs {
		value := ""
		for _, envVar := range spec.envVars {
			if v := os.Getenv(envVar); v != "" {
				value = v
				break
			}
		}
		if value == "" {
			missing = append(missing, spec.envVars[0])
			continue
		}
		creds[spec.key] = value
	}

	if name == "dnspod" && len(missing) > 0 {
		if combined := os.Getenv(dnspodCombinedTokenVar); combined != "" {
			id, key, found := strings.Cut(combined, ",")
			if !found || id == "" || key == "" {
				return nil, fmt.Errorf("%w: %s must be in \"id,token\" form",
					domain.ErrMissingCredential, dnspodCombinedTokenVar)
			}
			creds["secret_id"] = id
			creds["secret_key"] = key
			missing = nil
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: set %s for provider %s",
			domain.ErrMissingCredential, strings.Join(missing, ", "), name)
	}

	return &ProviderConfig{Provider: name, Credentials: creds}, nil
}

// SupportedProviders returns the known provider names, sorted.
func SupportedProviders() []string {
	names := make([]string, 0, len(providerSpecs))
	for name := range providerSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CredentialEnvVars returns the environment variables a provider reads
// its credentials from, in spec order.
func CredentialEnvVars(provider string) []string {
	specs, ok := providerSpecs[strings.ToLower(provider)]
	if !ok {
		return nil
	}
	var vars []string
	for _, spec := range specs {
		vars = append(vars, spec.envVars...)
	}
	if strings.ToLower(provider) == "dnspod" {
		vars = append(vars, dnspodCombinedTokenVar)
	}
	return vars
}
