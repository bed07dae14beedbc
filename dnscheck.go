package ddns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"

	"github.com/miekg/dns"
)

// SystemChecker resolves names with the operating system's resolver configuration.
type SystemChecker struct {
	// Lookup defaults to net.DefaultResolver.LookupIPAddr.
	Lookup func(ctx context.Context, host string) ([]net.IPAddr, error)
}

// ResolvesTo implements ddns.Checker.
// A name that does not exist yet resolves to nothing, so it reports false without an error.
func (c SystemChecker) ResolvesTo(ctx context.Context, name string, addr netip.Addr) (bool, error) {
	lookup := c.Lookup
	if lookup == nil {
		lookup = net.DefaultResolver.LookupIPAddr
	}
	res, err := lookup(ctx, name)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return false, nil
		}
		return false, fmt.Errorf("error resolving %s: %w", name, err)
	}

	addrs := make([]netip.Addr, 0, len(res))
	for _, r := range res {
		a, ok := netip.AddrFromSlice(r.IP)
		if !ok {
			continue
		}
		addrs = append(addrs, a.Unmap())
	}
	return onlyAddr(addrs, addr), nil
}

// NameserverChecker asks a single nameserver for the A records of a name,
// bypassing local caches. Pointing it at one of the zone's Route 53 nameservers
// shows the authoritative state.
type NameserverChecker struct {
	// Server is a host:port pair, e.g. "ns-123.awsdns-45.com:53".
	Server string
	Client *dns.Client
}

// ResolvesTo implements ddns.Checker.
func (c NameserverChecker) ResolvesTo(ctx context.Context, name string, addr netip.Addr) (bool, error) {
	client := c.Client
	if client == nil {
		client = new(dns.Client)
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(name), dns.TypeA)
	in, _, err := client.ExchangeContext(ctx, m, c.Server)
	if err != nil {
		return false, fmt.Errorf("error querying %s for %s: %w", c.Server, name, err)
	}
	switch in.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return false, nil
	default:
		return false, fmt.Errorf("nameserver %s answered %s for %s", c.Server, dns.RcodeToString[in.Rcode], name)
	}

	var addrs []netip.Addr
	for _, rr := range in.Answer {
		a, ok := rr.(*dns.A)
		if !ok {
			continue
		}
		if ip, ok := netip.AddrFromSlice(a.A.To4()); ok {
			addrs = append(addrs, ip)
		}
	}
	return onlyAddr(addrs, addr), nil
}

// onlyAddr reports whether the distinct members of addrs are exactly {want}.
func onlyAddr(addrs []netip.Addr, want netip.Addr) bool {
	if len(addrs) == 0 {
		return false
	}
	want = want.Unmap()
	for _, a := range addrs {
		if a != want {
			return false
		}
	}
	return true
}
