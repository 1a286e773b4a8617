package dns

import (
	"fmt"

	"github.com/lite-lake/xdns/internal/config"
	"github.com/lite-lake/xdns/internal/domain"
)

type CreatorFunc func(cfg *config.ProviderConfig) (Provider, error)

type Factory struct {
	creators map[string]CreatorFunc
}

func NewFactory() *Factory {
	return &Factory{
		creators: map[string]CreatorFunc{
			"aliyun":     createAliyun,
			"cloudflare": createCloudflare,
			"dnspod":     createDNSPod,
		},
	}
}

func (f *Factory) Create(cfg *config.ProviderConfig) (Provider, error) {
	creator, ok := f.creators[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProvider, cfg.Provider)
	}
	return creator(cfg)
}

func (f *Factory) Register(providerName string, creator CreatorFunc) {
	f.creators[providerName] = creator
}

func credential(cfg *config.ProviderConfig, key string) (string, error) {
	value, ok := cfg.Credentials[key]
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrMissingCredential, key)
	}
	return value, nil
}

func createAliyun(cfg *config.ProviderConfig) (Provider, error) {
	accessKeyID, err := credential(cfg, "access_key_id")
	if err != nil {
		return nil, err
	}
	accessKeySecret, err := credential(cfg, "access_key_secret")
	if err != nil {
		return nil, err
	}
	return NewAliyunProvider(accessKeyID, accessKeySecret)
}

func createCloudflare(cfg *config.ProviderConfig) (Provider, error) {
	apiToken, err := credential(cfg, "api_token")
	if err != nil {
		return nil, err
	}
	return NewCloudflareProvider(apiToken), nil
}

func createDNSPod(cfg *config.ProviderConfig) (Provider, error) {
	secretID, err := credential(cfg, "secret_id")
	if err != nil {
		return nil, err
	}
	secretKey, err := credential(cfg, "secret_key")
	if err != nil {
		return nil, err
	}
	return NewDNSPodProvider(secretID, secretKey)
}
