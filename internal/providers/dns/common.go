package dns

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var validTTLs = []int{1, 5, 10, 20, 30, 60, 120, 180, 300, 600, 900, 1800, 3600, 7200, 18000, 43200, 86400}

func ParseTTL(ttlStr string) (int, error) {
	ttl, err := strconv.Atoi(ttlStr)
	if err != nil {
		return 0, fmt.Errorf("invalid TTL: %s", ttlStr)
	}
	return NormalizeTTL(ttl), nil
}

// NormalizeTTL clamps ttl down to the nearest value the providers accept.
func NormalizeTTL(ttl int) int {
	idx, _ := slices.BinarySearch(validTTLs, ttl)
	if idx < len(validTTLs) && validTTLs[idx] == ttl {
		return ttl
	}
	if idx > 0 {
		return validTTLs[idx-1]
	}
	return 1
}

func DefaultTTL() int {
	return 600
}

// RelativeName converts an FQDN into the zone-relative RR, for backends
// that speak FQDNs (cloudflare).
func RelativeName(fullDomain, zone string) string {
	if fullDomain == zone {
		return "@"
	}
	suffix := "." + zone
	if strings.HasSuffix(fullDomain, suffix) {
		return strings.TrimSuffix(fullDomain, suffix)
	}
	return fullDomain
}

// AbsoluteName is the inverse of RelativeName.
func AbsoluteName(rr, zone string) string {
	if rr == "@" || rr == "" {
		return zone
	}
	return strings.Join([]string{rr, zone}, ".")
}

// FilterByType keeps the records of one type; an empty filter keeps all.
func FilterByType(records []Record, recordType string) []Record {
	if recordType == "" {
		return records
	}
	var out []Record
	for _, r := range records {
		if strings.EqualFold(r.Type, recordType) {
			out = append(out, r)
		}
	}
	return out
}

// MatchRecords returns the records with the given RR and type.
func MatchRecords(records []Record, rr, recordType string) []Record {
	var out []Record
	for _, r := range records {
		if r.Name == rr && strings.EqualFold(r.Type, recordType) {
			out = append(out, r)
		}
	}
	return out
}
