package ddns

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultServiceURL answers with the caller's address as plain text.
	// See https://github.com/mpolden/echoip.
	DefaultServiceURL = "https://ifconfig.co/ip"

	// DefaultUserAgent is sent with every lookup; ifconfig.co returns 403 Forbidden without one.
	DefaultUserAgent = "update-route53/1.0"
)

// WebResolver constructs a resolver which asks an external web service for the "public" IP address.
//
// serviceURL must speak http and return a 2xx status with the address, optionally surrounded by whitespace, as the response body.
// All other responses are considered an error.
func WebResolver(serviceURL string) (Resolver, error) {
	u, err := url.Parse(serviceURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing URL: %w", err)
	}
	return &webResolver{serviceURL: u, userAgent: DefaultUserAgent}, nil
}

// ipv4Client reaches the lookup service over IPv4 only,
// so a dual-stack host is answered with the address an A record can hold.
var ipv4Client = &http.Client{Transport: ipv4Transport()}

func ipv4Transport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	d := &net.Dialer{Timeout: 30 * time.Second, KeepAlive: 30 * time.Second}
	t.DialContext = func(ctx context.Context, _, addr string) (net.Conn, error) {
		return d.DialContext(ctx, "tcp4", addr)
	}
	return t
}

type webResolver struct {
	httpClient *http.Client
	serviceURL *url.URL
	userAgent  string
}

func (wr *webResolver) SetHTTPClient(c *http.Client) { wr.httpClient = c }

func (wr *webResolver) SetUserAgent(ua string) { wr.userAgent = ua }

// Resolve implements ddns.Resolver.
func (wr *webResolver) Resolve(ctx context.Context) (netip.Addr, error) {
	if wr.serviceURL == nil {
		return netip.Addr{}, errors.New("no external IP lookup service was provided")
	}

	// 15 seconds is an eternity for the size of the request we're making,
	// but this ensures that the lookup eventually completes even if the caller supplied context.Background
	// and http.DefaultClient (with no timeout).
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wr.serviceURL.String(), nil)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", wr.userAgent)
	req.Header.Set("Cache-Control", "no-cache")

	httpclient := wr.httpClient
	if httpclient == nil {
		httpclient = ipv4Client
	}

	resp, err := httpclient.Do(req)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return netip.Addr{}, fmt.Errorf("http request returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("error reading response body: %w", err)
	}
	ip, err := netip.ParseAddr(strings.TrimSpace(string(body)))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("error parsing IP address from response body: %w", err)
	}
	ip = ip.Unmap()
	if !ip.Is4() {
		return netip.Addr{}, fmt.Errorf("%s answered %s: %w", wr.serviceURL.Host, ip, ErrNotIPv4)
	}
	return ip, nil
}

// PublicResolver probes the local outbound address and only asks Web when that address is private.
// A host with a public address on its interface needs no external request.
type PublicResolver struct {
	Local Resolver
	Web   Resolver
}

func (r PublicResolver) Resolve(ctx context.Context) (netip.Addr, error) {
	local, err := r.Local.Resolve(ctx)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("error getting local address: %w", err)
	}
	if !IsPrivate(local) {
		return local, nil
	}
	addr, err := r.Web.Resolve(ctx)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("local address %s is private and the public lookup failed: %w", local, err)
	}
	if !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("public lookup returned %s: %w", addr, ErrNotIPv4)
	}
	return addr, nil
}

var nonPublic = []netip.Prefix{
	netip.MustParsePrefix("100.64.0.0/10"), // RFC 6598 carrier-grade NAT
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
}

// IsPrivate reports whether addr cannot be reached from the internet.
func IsPrivate(addr netip.Addr) bool {
	addr = addr.Unmap()
	if addr.IsPrivate() || addr.IsLoopback() || addr.IsLinkLocalUnicast() || addr.IsUnspecified() {
		return true
	}
	for _, p := range nonPublic {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
