package dnsops

import (
	"errors"
	"strconv"
	"testing"

	domainerr "github.com/lite-lake/xdns/internal/domain"
	"github.com/lite-lake/xdns/internal/providers/dns"
)

// fakeProvider is an in-memory Provider that records mutations.
type fakeProvider struct {
	records map[string][]dns.Record
	nextID  int

	listErr error
	creates int
	updates int
	deletes int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{records: map[string][]dns.Record{}, nextID: 1}
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) ListDomains() ([]string, error) {
	var out []string
	for zone := range f.records {
		out = append(out, zone)
	}
	return out, nil
}

func (f *fakeProvider) ListRecords(domain string) ([]dns.Record, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.records[domain], nil
}

func (f *fakeProvider) CreateRecord(domain string, record *dns.Record) error {
	f.creates++
	stored := *record
	stored.ID = strconv.Itoa(f.nextID)
	f.nextID++
	f.records[domain] = append(f.records[domain], stored)
	return nil
}

func (f *fakeProvider) UpdateRecord(domain string, recordID string, record *dns.Record) error {
	f.updates++
	for i, r := range f.records[domain] {
		if r.ID == recordID {
			updated := *record
			updated.ID = recordID
			f.records[domain][i] = updated
			return nil
		}
	}
	return dns.ErrRecordNotFound
}

func (f *fakeProvider) DeleteRecord(domain string, recordID string) error {
	f.deletes++
	for i, r := range f.records[domain] {
		if r.ID == recordID {
			f.records[domain] = append(f.records[domain][:i], f.records[domain][i+1:]...)
			return nil
		}
	}
	return dns.ErrRecordNotFound
}

func TestService_AddRecord(t *testing.T) {
	provider := newFakeProvider()
	svc := NewService(provider)

	record, err := svc.AddRecord("www.example.com", "1.2.3.4", "A", 0)
	if err != nil {
		t.Fatalf("AddRecord() error = %v", err)
	}
	if record.Name != "www" || record.Type != "A" || record.Value != "1.2.3.4" {
		t.Errorf("AddRecord() = %+v", record)
	}
	if got := provider.records["example.com"]; len(got) != 1 {
		t.Fatalf("zone has %d records, want 1", len(got))
	}
}

func TestService_AddRecord_Invalid(t *testing.T) {
	svc := NewService(newFakeProvider())

	if _, err := svc.AddRecord("localhost", "1.2.3.4", "A", 0); !errors.Is(err, domainerr.ErrInvalidDomain) {
		t.Errorf("AddRecord(localhost) error = %v, want ErrInvalidDomain", err)
	}
	if _, err := svc.AddRecord("www.example.com", "1.2.3.4", "PTR", 0); !errors.Is(err, domainerr.ErrInvalidType) {
		t.Errorf("AddRecord(PTR) error = %v, want ErrInvalidType", err)
	}
	if _, err := svc.AddRecord("www.example.com", "", "A", 0); !errors.Is(err, domainerr.ErrRequired) {
		t.Errorf("AddRecord(empty value) error = %v, want ErrRequired", err)
	}
}

func TestService_UpsertRecord_CreatesWhenAbsent(t *testing.T) {
	provider := newFakeProvider()
	svc := NewService(provider)

	_, created, err := svc.UpsertRecord("www.example.com", "1.2.3.4", "A", 0)
	if err != nil {
		t.Fatalf("UpsertRecord() error = %v", err)
	}
	if !created {
		t.Error("UpsertRecord() created = false, want true")
	}
	if provider.creates != 1 || provider.updates != 0 {
		t.Errorf("creates/updates = %d/%d, want 1/0", provider.creates, provider.updates)
	}
}

func TestService_UpsertRecord_UpdatesExisting(t *testing.T) {
	provider := newFakeProvider()
	svc := NewService(provider)

	if _, _, err := svc.UpsertRecord("www.example.com", "1.2.3.4", "A", 0); err != nil {
		t.Fatalf("seed upsert error = %v", err)
	}

	record, created, err := svc.UpsertRecord("www.example.com", "5.6.7.8", "A", 0)
	if err != nil {
		t.Fatalf("UpsertRecord() error = %v", err)
	}
	if created {
		t.Error("UpsertRecord() created = true, want false")
	}
	if record.Value != "5.6.7.8" {
		t.Errorf("UpsertRecord() value = %q, want %q", record.Value, "5.6.7.8")
	}

	records := provider.records["example.com"]
	if len(records) != 1 {
		t.Fatalf("zone has %d records, want exactly 1 after double upsert", len(records))
	}
	if records[0].Value != "5.6.7.8" {
		t.Errorf("stored value = %q, want %q", records[0].Value, "5.6.7.8")
	}
}

func TestService_UpsertRecord_NoopWhenIdentical(t *testing.T) {
	provider := newFakeProvider()
	svc := NewService(provider)

	if _, _, err := svc.UpsertRecord("www.example.com", "1.2.3.4", "A", 0); err != nil {
		t.Fatalf("seed upsert error = %v", err)
	}

	_, created, err := svc.UpsertRecord("www.example.com", "1.2.3.4", "A", 0)
	if err != nil {
		t.Fatalf("UpsertRecord() error = %v", err)
	}
	if created {
		t.Error("UpsertRecord() created = true, want false")
	}
	if provider.updates != 0 {
		t.Errorf("updates = %d, want 0 (identical record must not mutate)", provider.updates)
	}
}

func TestService_UpsertRecord_DistinctTypes(t *testing.T) {
	provider := newFakeProvider()
	svc := NewService(provider)

	if _, _, err := svc.UpsertRecord("www.example.com", "1.2.3.4", "A", 0); err != nil {
		t.Fatalf("A upsert error = %v", err)
	}
	_, created, err := svc.UpsertRecord("www.example.com", "2001:db8::1", "AAAA", 0)
	if err != nil {
		t.Fatalf("AAAA upsert error = %v", err)
	}
	if !created {
		t.Error("AAAA upsert should create, not update the A record")
	}
	if len(provider.records["example.com"]) != 2 {
		t.Errorf("zone has %d records, want 2", len(provider.records["example.com"]))
	}
}

func TestService_ListRecords_TypeFilter(t *testing.T) {
	provider := newFakeProvider()
	provider.records["example.com"] = []dns.Record{
		{ID: "1", Name: "www", Type: "A", Value: "1.2.3.4"},
		{ID: "2", Name: "www", Type: "AAAA", Value: "::1"},
		{ID: "3", Name: "blog", Type: "A", Value: "5.6.7.8"},
	}
	svc := NewService(provider)

	all, err := svc.ListRecords("example.com", "")
	if err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListRecords(no filter) = %d records, want 3", len(all))
	}

	aOnly, err := svc.ListRecords("example.com", "A")
	if err != nil {
		t.Fatalf("ListRecords(A) error = %v", err)
	}
	if len(aOnly) != 2 {
		t.Errorf("ListRecords(A) = %d records, want 2", len(aOnly))
	}

	if _, err := svc.ListRecords("example.com", "BOGUS"); !errors.Is(err, domainerr.ErrInvalidType) {
		t.Errorf("ListRecords(BOGUS) error = %v, want ErrInvalidType", err)
	}
}

func TestService_ListRecords_EmptyZone(t *testing.T) {
	svc := NewService(newFakeProvider())

	records, err := svc.ListRecords("example.com", "A")
	if err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}
	if len(records) != 0 {
		t.Errorf("ListRecords(empty zone) = %d records, want 0", len(records))
	}
}

func TestService_DeleteRecords(t *testing.T) {
	provider := newFakeProvider()
	provider.records["example.com"] = []dns.Record{
		{ID: "1", Name: "www", Type: "A", Value: "1.2.3.4"},
		{ID: "2", Name: "www", Type: "A", Value: "5.6.7.8"},
		{ID: "3", Name: "www", Type: "AAAA", Value: "::1"},
	}
	svc := NewService(provider)

	deleted, err := svc.DeleteRecords("www.example.com", "A")
	if err != nil {
		t.Fatalf("DeleteRecords() error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("DeleteRecords() = %d, want 2", deleted)
	}
	if len(provider.records["example.com"]) != 1 {
		t.Errorf("zone has %d records, want 1 (AAAA untouched)", len(provider.records["example.com"]))
	}
}

func TestService_DeleteRecords_NotFound(t *testing.T) {
	svc := NewService(newFakeProvider())

	_, err := svc.DeleteRecords("www.example.com", "A")
	if !errors.Is(err, domainerr.ErrDNSRecordNotFound) {
		t.Errorf("DeleteRecords() error = %v, want ErrDNSRecordNotFound", err)
	}
}

func TestService_ProviderFailureSurfaces(t *testing.T) {
	provider := newFakeProvider()
	provider.listErr = errors.New("auth rejected")
	svc := NewService(provider)

	_, err := svc.ListRecords("example.com", "")
	if err == nil || !errors.Is(err, provider.listErr) {
		t.Errorf("ListRecords() error = %v, want wrapped provider error", err)
	}
}
