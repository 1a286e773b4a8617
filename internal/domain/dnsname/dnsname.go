// Package dnsname splits fully qualified record names into the
// registrable zone and the zone-relative host record (RR).
package dnsname

import (
	"fmt"
	"strings"

	"github.com/lite-lake/xdns/internal/domain"
)

// Apex is the RR naming the zone itself.
const Apex = "@"

// Compound second-level suffixes under .cn that registrations sit below,
// so "example.com.cn" is one zone, not a record inside "com.cn".
var compoundCNSuffixes = map[string]bool{
	"com": true,
	"net": true,
	"org": true,
	"gov": true,
	"edu": true,
}

// Split breaks a full domain name into (zone, rr):
//
//	www.example.com     -> (example.com, www)
//	example.com         -> (example.com, @)
//	sub.www.example.com -> (example.com, sub.www)
//	www.example.com.cn  -> (example.com.cn, www)
func Split(fullDomain string) (zone, rr string, err error) {
	name := strings.TrimSuffix(strings.TrimSpace(fullDomain), ".")
	parts := strings.Split(name, ".")
	if name == "" || len(parts) < 2 {
		return "", "", fmt.Errorf("%w: %s", domain.ErrInvalidDomain, fullDomain)
	}
	for _, p := range parts {
		if p == "" {
			return "", "", fmt.Errorf("%w: %s", domain.ErrInvalidDomain, fullDomain)
		}
	}

	zoneLabels := 2
	if parts[len(parts)-1] == "cn" && compoundCNSuffixes[parts[len(parts)-2]] {
		if len(parts) == 2 {
			// bare "com.cn" style suffix, treat as the zone itself
			return name, Apex, nil
		}
		zoneLabels = 3
	}

	zone = strings.Join(parts[len(parts)-zoneLabels:], ".")
	if len(parts) == zoneLabels {
		return zone, Apex, nil
	}
	rr = strings.Join(parts[:len(parts)-zoneLabels], ".")
	return zone, rr, nil
}

// Join is the inverse of Split.
func Join(rr, zone string) string {
	if rr == Apex || rr == "" {
		return zone
	}
	return rr + "." + zone
}
