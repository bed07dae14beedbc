package ddns

import "strings"

// knownSuffixes are the two-label public suffixes offered by the Route 53 registrar.
// This is not the public suffix list; names under any other multi-label suffix
// will resolve to the wrong zone.
var knownSuffixes = []string{
	"com.au",
	"co.uk",
	"com.mx",
	"me.uk",
	"net.au",
	"net.nz",
	"org.nz",
	"org.uk",
}

// DomainFromFQDN returns the registrable domain of fqdn, which is the name of
// the hosted zone that should contain it.
//
//	"foo.bar.co.uk." -> "bar.co.uk"
//	"www.example.com" -> "example.com"
func DomainFromFQDN(fqdn string) string {
	name := strings.TrimSuffix(fqdn, ".")

	n := 2
	for _, s := range knownSuffixes {
		if name == s || strings.HasSuffix(name, "."+s) {
			n = 3
			break
		}
	}

	labels := strings.Split(name, ".")
	if len(labels) > n {
		labels = labels[len(labels)-n:]
	}
	return strings.Join(labels, ".")
}
