package ddns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/netip"
)

// DefaultProbeTarget is dialed by LocalResolver to find the outbound address.
const DefaultProbeTarget = "8.8.8.8:80"

// LocalResolver returns the local address the kernel would use to reach Target.
//
// It "connects" a UDP socket, which selects a route and source address without sending a packet,
// so it costs nothing on the network.
// The result is the address of the outbound interface, which is only the public address when the host is not behind NAT.
type LocalResolver struct {
	// Target defaults to DefaultProbeTarget.
	Target string
}

func (r LocalResolver) Resolve(ctx context.Context) (netip.Addr, error) {
	target := r.Target
	if target == "" {
		target = DefaultProbeTarget
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp4", target)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("error probing route to %s: %w", target, err)
	}
	defer conn.Close()

	laddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return netip.Addr{}, fmt.Errorf("unexpected local address type %T", conn.LocalAddr())
	}
	addr, ok := netip.AddrFromSlice(laddr.IP)
	if !ok {
		return netip.Addr{}, fmt.Errorf("unable to parse local address %s", laddr)
	}
	return addr.Unmap(), nil
}

// InterfaceResolver constructs a resolver that returns the first IPv4 address reported by the named interface.
// Loopback addresses are skipped.
func InterfaceResolver(iface string) Resolver {
	return interfaceResolver{iface: iface}
}

type interfaceResolver struct {
	iface string
}

func (r interfaceResolver) Resolve(ctx context.Context) (netip.Addr, error) {
	iface, err := net.InterfaceByName(r.iface)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("error getting interface %s by name: %w", r.iface, err)
	}
	a, err := iface.Addrs()
	if err != nil {
		return netip.Addr{}, fmt.Errorf("error looking up addresses for interface %s: %w", r.iface, err)
	}
	// addr: ip+net:192.168.86.253/24
	// addr: ip+net:fe80::2cc9:801b:3551:9a43/64
	var errs []error
	for _, addr := range a {
		ip, err := netip.ParsePrefix(addr.String())
		if err != nil {
			errs = append(errs, fmt.Errorf("error parsing local ip %s for interface %s: %s", addr.String(), r.iface, err))
			continue
		}
		if ip.Addr().IsLoopback() || !ip.Addr().Is4() {
			continue
		}
		return ip.Addr(), nil
	}
	if len(errs) > 0 {
		return netip.Addr{}, errors.Join(errs...)
	}
	return netip.Addr{}, fmt.Errorf("interface %s has no IPv4 address", r.iface)
}
