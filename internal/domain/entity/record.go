package entity

import (
	"fmt"
	"strings"

	"github.com/lite-lake/xdns/internal/domain"
)

type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeMX    RecordType = "MX"
	RecordTypeTXT   RecordType = "TXT"
	RecordTypeNS    RecordType = "NS"
	RecordTypeSRV   RecordType = "SRV"
)

// DefaultRecordType is assumed when a command omits -t/--type.
const DefaultRecordType = RecordTypeA

var validRecordTypes = map[RecordType]bool{
	RecordTypeA:     true,
	RecordTypeAAAA:  true,
	RecordTypeCNAME: true,
	RecordTypeMX:    true,
	RecordTypeTXT:   true,
	RecordTypeNS:    true,
	RecordTypeSRV:   true,
}

// Record is a single DNS entry within a zone. Name is relative to the
// zone, with "@" standing for the apex. A TTL of 0 means the provider's
// default.
type Record struct {
	Domain string     `yaml:"domain,omitempty"`
	Type   RecordType `yaml:"type"`
	Name   string     `yaml:"name"`
	Value  string     `yaml:"value"`
	TTL    int        `yaml:"ttl"`
}

func ParseRecordType(s string) (RecordType, error) {
	t := RecordType(strings.ToUpper(s))
	if !validRecordTypes[t] {
		return "", fmt.Errorf("%w: dns record type %s", domain.ErrInvalidType, s)
	}
	return t, nil
}

func (r *Record) Validate() error {
	if !validRecordTypes[r.Type] {
		return fmt.Errorf("%w: dns record type %s", domain.ErrInvalidType, r.Type)
	}
	if r.Name == "" {
		return domain.RequiredField("name")
	}
	if r.Value == "" {
		return domain.RequiredField("value")
	}
	if r.TTL < 0 {
		return fmt.Errorf("%w: ttl must be non-negative", domain.ErrInvalidTTL)
	}
	return nil
}
