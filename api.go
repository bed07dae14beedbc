package ddns

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -destination ddns_mock.go -package ddns . Provider,Checker

import (
	"context"
	"net/netip"

	"github.com/aws/aws-sdk-go-v2/service/route53"
)

// Resolver finds the address that should be published for a name.
type Resolver interface {
	Resolve(context.Context) (netip.Addr, error)
}

// Provider is the DNS API that owns the hosted zone.
type Provider interface {
	HostedZoneID(ctx context.Context, domain string) (string, error)
	Upsert(ctx context.Context, zoneID, name string, addr netip.Addr) (*route53.ChangeResourceRecordSetsOutput, error)
}

// Checker reports whether name currently resolves to addr and nothing else.
type Checker interface {
	ResolvesTo(ctx context.Context, name string, addr netip.Addr) (bool, error)
}

// ResolverFunc adapts an ordinary function to the Resolver interface.
type ResolverFunc func(context.Context) (netip.Addr, error)

func (f ResolverFunc) Resolve(ctx context.Context) (netip.Addr, error) {
	return f(ctx)
}
