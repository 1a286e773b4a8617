package dns

import (
	"context"
	"fmt"

	"github.com/cloudflare/cloudflare-go/v2"
	cfdns "github.com/cloudflare/cloudflare-go/v2/dns"
	"github.com/cloudflare/cloudflare-go/v2/option"
	"github.com/cloudflare/cloudflare-go/v2/zones"
)

// CloudflareProvider talks to the Cloudflare v4 API. Cloudflare uses
// FQDNs for record names, so results are converted to zone-relative RRs
// on the way out and back to FQDNs on the way in.
type CloudflareProvider struct {
	client *cloudflare.Client
}

func NewCloudflareProvider(apiToken string) *CloudflareProvider {
	client := cloudflare.NewClient(
		option.WithAPIToken(apiToken),
	)
	return &CloudflareProvider{client: client}
}

func (p *CloudflareProvider) Name() string {
	return "cloudflare"
}

func (p *CloudflareProvider) getZoneID(ctx context.Context, domain string) (string, error) {
	resp, err := p.client.Zones.List(ctx, zones.ZoneListParams{
		Name: cloudflare.F(domain),
	})
	if err != nil {
		return "", fmt.Errorf("failed to list zones: %w", err)
	}
	if len(resp.Result) == 0 {
		return "", ErrDomainNotFound
	}
	return resp.Result[0].ID, nil
}

func (p *CloudflareProvider) ListRecords(domain string) ([]Record, error) {
	ctx := context.Background()
	zoneID, err := p.getZoneID(ctx, domain)
	if err != nil {
		return nil, err
	}

	var records []Record
	pager := p.client.DNS.Records.ListAutoPaging(ctx, cfdns.RecordListParams{
		ZoneID: cloudflare.F(zoneID),
	})
	for pager.Next() {
		record := pager.Current()
		content := ""
		if str, ok := record.Content.(string); ok {
			content = str
		}
		records = append(records, Record{
			ID:    record.ID,
			Name:  RelativeName(record.Name, domain),
			Type:  string(record.Type),
			Value: content,
			TTL:   int(record.TTL),
		})
	}
	if err := pager.Err(); err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

func (p *CloudflareProvider) CreateRecord(domain string, record *Record) error {
	ctx := context.Background()
	zoneID, err := p.getZoneID(ctx, domain)
	if err != nil {
		return err
	}

	// Cloudflare treats TTL 1 as "automatic".
	ttl := record.TTL
	if ttl == 0 {
		ttl = 1
	}

	params := cfdns.RecordNewParams{
		ZoneID: cloudflare.F(zoneID),
		Record: cfdns.ARecordParam{
			Name:    cloudflare.F(AbsoluteName(record.Name, domain)),
			Type:    cloudflare.F(cfdns.ARecordType(record.Type)),
			Content: cloudflare.F(record.Value),
			TTL:     cloudflare.F(cfdns.TTL(ttl)),
		},
	}

	_, err = p.client.DNS.Records.New(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (p *CloudflareProvider) UpdateRecord(domain string, recordID string, record *Record) error {
	ctx := context.Background()
	zoneID, err := p.getZoneID(ctx, domain)
	if err != nil {
		return err
	}

	ttl := record.TTL
	if ttl == 0 {
		ttl = 1
	}

	params := cfdns.RecordEditParams{
		ZoneID: cloudflare.F(zoneID),
		Record: cfdns.ARecordParam{
			Name:    cloudflare.F(AbsoluteName(record.Name, domain)),
			Type:    cloudflare.F(cfdns.ARecordType(record.Type)),
			Content: cloudflare.F(record.Value),
			TTL:     cloudflare.F(cfdns.TTL(ttl)),
		},
	}

	_, err = p.client.DNS.Records.Edit(ctx, recordID, params)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

func (p *CloudflareProvider) DeleteRecord(domain string, recordID string) error {
	ctx := context.Background()
	zoneID, err := p.getZoneID(ctx, domain)
	if err != nil {
		return err
	}

	_, err = p.client.DNS.Records.Delete(ctx, recordID, cfdns.RecordDeleteParams{
		ZoneID: cloudflare.F(zoneID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (p *CloudflareProvider) ListDomains() ([]string, error) {
	ctx := context.Background()
	var zoneNames []string
	pager := p.client.Zones.ListAutoPaging(ctx, zones.ZoneListParams{})
	for pager.Next() {
		zone := pager.Current()
		zoneNames = append(zoneNames, zone.Name)
	}
	if err := pager.Err(); err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	return zoneNames, nil
}
