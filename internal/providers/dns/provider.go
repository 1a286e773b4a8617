package dns

import "errors"

var (
	ErrDomainNotFound  = errors.New("domain not found")
	ErrRecordNotFound  = errors.New("record not found")
	ErrInvalidResponse = errors.New("invalid response from provider")
)

// Record is a provider-hosted DNS record. Name is relative to the zone
// ("@" for the apex) regardless of how the provider represents it on the
// wire. ID is the provider-assigned identifier needed for update and
// delete round-trips.
type Record struct {
	ID    string `yaml:"-"`
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
	TTL   int    `yaml:"ttl"`
}

// Provider is the closed capability set every backend implements. Each
// operation is a single synchronous call to the provider's API; callers
// get the provider's failure wrapped, never retried.
type Provider interface {
	Name() string
	ListDomains() ([]string, error)
	ListRecords(domain string) ([]Record, error)
	CreateRecord(domain string, record *Record) error
	UpdateRecord(domain string, recordID string, record *Record) error
	DeleteRecord(domain string, recordID string) error
}
