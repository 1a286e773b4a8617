// Package dnsops implements the record operations the CLI exposes on
// top of a single provider backend.
package dnsops

import (
	"fmt"

	domainerr "github.com/lite-lake/xdns/internal/domain"
	"github.com/lite-lake/xdns/internal/domain/dnsname"
	"github.com/lite-lake/xdns/internal/domain/entity"
	"github.com/lite-lake/xdns/internal/infrastructure/logger"
	"github.com/lite-lake/xdns/internal/providers/dns"
)

type Service struct {
	provider dns.Provider
}

func NewService(provider dns.Provider) *Service {
	return &Service{provider: provider}
}

// ListRecords returns the zone's records, optionally filtered by type.
// An empty result is not an error.
func (s *Service) ListRecords(domain, typeFilter string) ([]dns.Record, error) {
	if typeFilter != "" {
		if _, err := entity.ParseRecordType(typeFilter); err != nil {
			return nil, err
		}
	}
	records, err := s.provider.ListRecords(domain)
	if err != nil {
		return nil, domainerr.WrapOp("list records", err)
	}
	return dns.FilterByType(records, typeFilter), nil
}

// AddRecord creates a record under the zone derived from fullDomain.
// Whether duplicates are rejected is up to the provider.
func (s *Service) AddRecord(fullDomain, value, recordType string, ttl int) (*dns.Record, error) {
	zone, record, err := s.buildRecord(fullDomain, value, recordType, ttl)
	if err != nil {
		return nil, err
	}

	logger.Debug("adding record",
		"provider", s.provider.Name(), "zone", zone,
		"rr", record.Name, "type", record.Type, "value", record.Value)

	if err := s.provider.CreateRecord(zone, record); err != nil {
		return nil, domainerr.WrapOp("add record", err)
	}
	return record, nil
}

// UpsertRecord updates the record's value and TTL, creating it when
// absent. The created result reports which branch was taken. A record
// that already carries the desired value and TTL is left untouched.
func (s *Service) UpsertRecord(fullDomain, value, recordType string, ttl int) (record *dns.Record, created bool, err error) {
	zone, desired, err := s.buildRecord(fullDomain, value, recordType, ttl)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.provider.ListRecords(zone)
	if err != nil {
		return nil, false, domainerr.WrapOp("list records", err)
	}

	matches := dns.MatchRecords(existing, desired.Name, desired.Type)
	if len(matches) == 0 {
		if err := s.provider.CreateRecord(zone, desired); err != nil {
			return nil, false, domainerr.WrapOp("add record", err)
		}
		return desired, true, nil
	}

	current := matches[0]
	if current.Value == desired.Value && (desired.TTL == 0 || current.TTL == desired.TTL) {
		logger.Debug("record already up to date", "zone", zone, "rr", desired.Name)
		return &current, false, nil
	}

	if err := s.provider.UpdateRecord(zone, current.ID, desired); err != nil {
		return nil, false, domainerr.WrapOp("update record", err)
	}
	desired.ID = current.ID
	return desired, false, nil
}

// FindRecords returns the records matching fullDomain's RR and the given
// type within its zone.
func (s *Service) FindRecords(fullDomain, recordType string) ([]dns.Record, error) {
	zone, rr, err := dnsname.Split(fullDomain)
	if err != nil {
		return nil, err
	}
	rtype, err := entity.ParseRecordType(recordType)
	if err != nil {
		return nil, err
	}
	records, err := s.provider.ListRecords(zone)
	if err != nil {
		return nil, domainerr.WrapOp("list records", err)
	}
	return dns.MatchRecords(records, rr, string(rtype)), nil
}

// DeleteRecords removes every record matching fullDomain's RR and the
// given type, returning how many were deleted. No match is an error.
func (s *Service) DeleteRecords(fullDomain, recordType string) (int, error) {
	zone, rr, err := dnsname.Split(fullDomain)
	if err != nil {
		return 0, err
	}

	matches, err := s.FindRecords(fullDomain, recordType)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, fmt.Errorf("%w: %s %s", domainerr.ErrDNSRecordNotFound, recordType, fullDomain)
	}

	deleted := 0
	for _, record := range matches {
		if err := s.provider.DeleteRecord(zone, record.ID); err != nil {
			return deleted, domainerr.WrapOp("delete record", err)
		}
		deleted++
		logger.Debug("deleted record", "zone", zone, "rr", rr, "id", record.ID)
	}
	return deleted, nil
}

// ListDomains returns the zones visible to the configured credentials.
func (s *Service) ListDomains() ([]string, error) {
	domains, err := s.provider.ListDomains()
	if err != nil {
		return nil, domainerr.WrapOp("list domains", err)
	}
	return domains, nil
}

func (s *Service) buildRecord(fullDomain, value, recordType string, ttl int) (string, *dns.Record, error) {
	zone, rr, err := dnsname.Split(fullDomain)
	if err != nil {
		return "", nil, err
	}
	rtype, err := entity.ParseRecordType(recordType)
	if err != nil {
		return "", nil, err
	}

	rec := &entity.Record{
		Domain: zone,
		Type:   rtype,
		Name:   rr,
		Value:  value,
		TTL:    ttl,
	}
	if err := rec.Validate(); err != nil {
		return "", nil, err
	}
	if ttl > 0 {
		ttl = dns.NormalizeTTL(ttl)
	}

	return zone, &dns.Record{
		Name:  rr,
		Type:  string(rtype),
		Value: value,
		TTL:   ttl,
	}, nil
}
