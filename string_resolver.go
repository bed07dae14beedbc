package ddns

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
)

// ErrNotIPv4 is returned for addresses that cannot be stored in an A record.
var ErrNotIPv4 = errors.New("not an IPv4 address")

// FromString constructs a resolver that always returns addr.
// The address is validated here so a bad value fails before any network activity.
func FromString(addr string) (Resolver, error) {
	ip, err := ParseIPv4(addr)
	if err != nil {
		return nil, err
	}
	return stringResolver(ip), nil
}

type stringResolver netip.Addr

func (s stringResolver) Resolve(context.Context) (netip.Addr, error) {
	return netip.Addr(s), nil
}

// ParseIPv4 parses s and rejects anything that is not an IPv4 address.
// IPv4-mapped IPv6 forms such as "::ffff:192.0.2.1" are unmapped.
func ParseIPv4(s string) (netip.Addr, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("unable to parse IP: %w", err)
	}
	ip = ip.Unmap()
	if !ip.Is4() {
		return netip.Addr{}, fmt.Errorf("%s: %w", s, ErrNotIPv4)
	}
	return ip, nil
}
