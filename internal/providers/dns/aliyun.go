package dns

import (
	"fmt"

	alidns "github.com/alibabacloud-go/alidns-20150109/v4/client"
	openapi "github.com/alibabacloud-go/darabonba-openapi/v2/client"
	"github.com/alibabacloud-go/tea/tea"
)

// AliyunProvider talks to Alibaba Cloud DNS. Aliyun's API is already
// RR-relative, so names pass through unchanged.
type AliyunProvider struct {
	client *alidns.Client
}

func NewAliyunProvider(accessKeyID, accessKeySecret string) (*AliyunProvider, error) {
	cfg := &openapi.Config{
		AccessKeyId:     tea.String(accessKeyID),
		AccessKeySecret: tea.String(accessKeySecret),
	}
	cfg.Endpoint = tea.String("dns.aliyuncs.com")
	client, err := alidns.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("create aliyun dns client: %w", err)
	}
	return &AliyunProvider{client: client}, nil
}

func (p *AliyunProvider) Name() string {
	return "aliyun"
}

func (p *AliyunProvider) ListRecords(domain string) ([]Record, error) {
	req := &alidns.DescribeDomainRecordsRequest{
		DomainName: tea.String(domain),
	}
	resp, err := p.client.DescribeDomainRecords(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	var records []Record
	if resp.Body != nil && resp.Body.DomainRecords != nil {
		for _, r := range resp.Body.DomainRecords.Record {
			ttl := DefaultTTL()
			if r.TTL != nil {
				ttl = int(*r.TTL)
			}
			records = append(records, Record{
				ID:    tea.StringValue(r.RecordId),
				Name:  tea.StringValue(r.RR),
				Type:  tea.StringValue(r.Type),
				Value: tea.StringValue(r.Value),
				TTL:   ttl,
			})
		}
	}
	return records, nil
}

func (p *AliyunProvider) CreateRecord(domain string, record *Record) error {
	ttl := int64(record.TTL)
	if ttl == 0 {
		ttl = int64(DefaultTTL())
	}

	req := &alidns.AddDomainRecordRequest{
		DomainName: tea.String(domain),
		RR:         tea.String(record.Name),
		Type:       tea.String(record.Type),
		Value:      tea.String(record.Value),
		TTL:        tea.Int64(ttl),
	}

	_, err := p.client.AddDomainRecord(req)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (p *AliyunProvider) UpdateRecord(domain string, recordID string, record *Record) error {
	ttl := int64(record.TTL)
	if ttl == 0 {
		ttl = int64(DefaultTTL())
	}

	req := &alidns.UpdateDomainRecordRequest{
		RecordId: tea.String(recordID),
		RR:       tea.String(record.Name),
		Type:     tea.String(record.Type),
		Value:    tea.String(record.Value),
		TTL:      tea.Int64(ttl),
	}

	_, err := p.client.UpdateDomainRecord(req)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

func (p *AliyunProvider) DeleteRecord(domain string, recordID string) error {
	req := &alidns.DeleteDomainRecordRequest{
		RecordId: tea.String(recordID),
	}

	_, err := p.client.DeleteDomainRecord(req)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (p *AliyunProvider) ListDomains() ([]string, error) {
	req := &alidns.DescribeDomainsRequest{}
	resp, err := p.client.DescribeDomains(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	var domains []string
	if resp.Body != nil && resp.Body.Domains != nil {
		for _, d := range resp.Body.Domains.Domain {
			domains = append(domains, tea.StringValue(d.DomainName))
		}
	}
	return domains, nil
}
