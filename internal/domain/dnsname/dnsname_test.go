package dnsname

import (
	"errors"
	"testing"

	"github.com/lite-lake/xdns/internal/domain"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantZone string
		wantRR   string
		wantErr  bool
	}{
		{name: "simple subdomain", in: "www.example.com", wantZone: "example.com", wantRR: "www"},
		{name: "apex", in: "example.com", wantZone: "example.com", wantRR: "@"},
		{name: "nested subdomain", in: "sub.www.example.com", wantZone: "example.com", wantRR: "sub.www"},
		{name: "trailing dot", in: "www.example.com.", wantZone: "example.com", wantRR: "www"},
		{name: "compound cn suffix", in: "www.example.com.cn", wantZone: "example.com.cn", wantRR: "www"},
		{name: "compound cn apex", in: "example.com.cn", wantZone: "example.com.cn", wantRR: "@"},
		{name: "compound cn nested", in: "a.b.example.net.cn", wantZone: "example.net.cn", wantRR: "a.b"},
		{name: "bare compound suffix", in: "com.cn", wantZone: "com.cn", wantRR: "@"},
		{name: "plain cn zone", in: "www.example.cn", wantZone: "example.cn", wantRR: "www"},
		{name: "single label", in: "localhost", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "empty label", in: "www..example.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone, rr, err := Split(tt.in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidDomain) {
					t.Fatalf("Split(%q) error = %v, want ErrInvalidDomain", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Split(%q) unexpected error = %v", tt.in, err)
			}
			if zone != tt.wantZone || rr != tt.wantRR {
				t.Errorf("Split(%q) = (%q, %q), want (%q, %q)", tt.in, zone, rr, tt.wantZone, tt.wantRR)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		rr   string
		zone string
		want string
	}{
		{rr: "www", zone: "example.com", want: "www.example.com"},
		{rr: "@", zone: "example.com", want: "example.com"},
		{rr: "", zone: "example.com", want: "example.com"},
		{rr: "sub.www", zone: "example.com.cn", want: "sub.www.example.com.cn"},
	}

	for _, tt := range tests {
		if got := Join(tt.rr, tt.zone); got != tt.want {
			t.Errorf("Join(%q, %q) = %q, want %q", tt.rr, tt.zone, got, tt.want)
		}
	}
}

func TestSplitJoinRoundTrip(t *testing.T) {
	inputs := []string{"www.example.com", "example.com", "a.b.c.example.org.cn"}
	for _, in := range inputs {
		zone, rr, err := Split(in)
		if err != nil {
			t.Fatalf("Split(%q) error = %v", in, err)
		}
		if got := Join(rr, zone); got != in {
			t.Errorf("Join(Split(%q)) = %q", in, got)
		}
	}
}
