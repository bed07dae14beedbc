package ddns_test

import (
	"testing"

	"github.com/Travis-Britz/route53-ddns"
)

func TestDomainFromFQDN(t *testing.T) {
	tests := []struct {
		fqdn string
		want string
	}{
		{"subdomain.subdomain.domain.com.", "domain.com"},
		{"foo.bar.co.uk.", "bar.co.uk"},
		{"myhome.mydomain.com", "mydomain.com"},
		{"foo.bar.baz.com.mx", "baz.com.mx"},
		{"domain.org", "domain.org"},
		{"a.b.example.org.nz", "example.org.nz"},
		{"www.example.net.au.", "example.net.au"},
		{"home.example.me.uk", "example.me.uk"},
		{"bar.co.uk", "bar.co.uk"},
		{"home.myco.uk", "myco.uk"},
	}

	for _, tt := range tests {
		t.Run(tt.fqdn, func(t *testing.T) {
			if got := ddns.DomainFromFQDN(tt.fqdn); got != tt.want {
				t.Errorf("DomainFromFQDN(%q): got %q, want %q", tt.fqdn, got, tt.want)
			}
		})
	}
}

func TestDomainFromFQDNTrailingDot(t *testing.T) {
	for _, name := range []string{"domain.org", "x.y.co.uk", "a.b.c.example.com"} {
		if with, without := ddns.DomainFromFQDN(name+"."), ddns.DomainFromFQDN(name); with != without {
			t.Errorf("trailing dot changed result for %q: %q != %q", name, with, without)
		}
	}
}

func TestDomainFromFQDNShortInput(t *testing.T) {
	// Not a meaningful domain, but must not panic.
	tests := map[string]string{
		"":           "",
		".":          "",
		"localhost":  "localhost",
		"localhost.": "localhost",
		"co.uk":      "co.uk",
	}
	for in, want := range tests {
		if got := ddns.DomainFromFQDN(in); got != want {
			t.Errorf("DomainFromFQDN(%q): got %q, want %q", in, got, want)
		}
	}
}
