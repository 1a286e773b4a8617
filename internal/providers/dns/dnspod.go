package dns

import (
	"fmt"
	"strconv"

	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common"
	"github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/profile"
	dnspod "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/dnspod/v20210323"
)

// DNSPodProvider talks to DNSPod through the Tencent Cloud API. DNSPod
// record IDs are numeric; they travel as strings through the Provider
// contract and are parsed back at the edge.
type DNSPodProvider struct {
	client *dnspod.Client
}

func NewDNSPodProvider(secretID, secretKey string) (*DNSPodProvider, error) {
	credential := common.NewCredential(secretID, secretKey)
	cpf := profile.NewClientProfile()
	cpf.HttpProfile.Endpoint = "dnspod.tencentcloudapi.com"
	client, err := dnspod.NewClient(credential, "", cpf)
	if err != nil {
		return nil, fmt.Errorf("create dnspod client: %w", err)
	}
	return &DNSPodProvider{client: client}, nil
}

func (p *DNSPodProvider) Name() string {
	return "dnspod"
}

func (p *DNSPodProvider) ListRecords(domain string) ([]Record, error) {
	req := dnspod.NewDescribeRecordListRequest()
	req.Domain = common.StringPtr(domain)

	resp, err := p.client.DescribeRecordList(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	var records []Record
	if resp.Response != nil && resp.Response.RecordList != nil {
		for _, r := range resp.Response.RecordList {
			ttl := DefaultTTL()
			if r.TTL != nil {
				ttl = int(*r.TTL)
			}
			records = append(records, Record{
				ID:    strconv.FormatUint(*r.RecordId, 10),
				Name:  *r.Name,
				Type:  *r.Type,
				Value: *r.Value,
				TTL:   ttl,
			})
		}
	}
	return records, nil
}

func (p *DNSPodProvider) CreateRecord(domain string, record *Record) error {
	ttl := uint64(record.TTL)
	if ttl == 0 {
		ttl = uint64(DefaultTTL())
	}

	req := dnspod.NewCreateRecordRequest()
	req.Domain = common.StringPtr(domain)
	req.SubDomain = common.StringPtr(record.Name)
	req.RecordType = common.StringPtr(record.Type)
	req.RecordLine = common.StringPtr("默认")
	req.Value = common.StringPtr(record.Value)
	req.TTL = common.Uint64Ptr(ttl)

	_, err := p.client.CreateRecord(req)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (p *DNSPodProvider) UpdateRecord(domain string, recordID string, record *Record) error {
	recordIDInt, err := strconv.ParseUint(recordID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid record ID: %w", err)
	}

	ttl := uint64(record.TTL)
	if ttl == 0 {
		ttl = uint64(DefaultTTL())
	}

	req := dnspod.NewModifyRecordRequest()
	req.Domain = common.StringPtr(domain)
	req.RecordId = common.Uint64Ptr(recordIDInt)
	req.SubDomain = common.StringPtr(record.Name)
	req.RecordType = common.StringPtr(record.Type)
	req.RecordLine = common.StringPtr("默认")
	req.Value = common.StringPtr(record.Value)
	req.TTL = common.Uint64Ptr(ttl)

	_, err = p.client.ModifyRecord(req)
	if err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

func (p *DNSPodProvider) DeleteRecord(domain string, recordID string) error {
	recordIDInt, err := strconv.ParseUint(recordID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid record ID: %w", err)
	}

	req := dnspod.NewDeleteRecordRequest()
	req.Domain = common.StringPtr(domain)
	req.RecordId = common.Uint64Ptr(recordIDInt)

	_, err = p.client.DeleteRecord(req)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (p *DNSPodProvider) ListDomains() ([]string, error) {
	req := dnspod.NewDescribeDomainListRequest()
	resp, err := p.client.DescribeDomainList(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	var domains []string
	if resp.Response != nil && resp.Response.DomainList != nil {
		for _, d := range resp.Response.DomainList {
			domains = append(domains, *d.Name)
		}
	}
	return domains, nil
}
