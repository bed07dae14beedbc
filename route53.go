package ddns

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -destination route53_mock.go -package ddns . Route53API

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go/logging"
	"github.com/rs/zerolog"
)

const (
	// RecordTTL is the TTL in seconds of every record written by Route53Provider.
	RecordTTL = 300

	changeComment = "Update from update-route53"

	// Route 53 is a global service; the SDK still wants a region to sign with.
	defaultRegion = "us-east-1"
)

// ErrZoneNotFound is returned when no hosted zone is named exactly after the domain.
var ErrZoneNotFound = errors.New("hosted zone not found")

// Route53API is the subset of *route53.Client used by Route53Provider.
type Route53API interface {
	ListHostedZonesByName(ctx context.Context, params *route53.ListHostedZonesByNameInput, optFns ...func(*route53.Options)) (*route53.ListHostedZonesByNameOutput, error)
	ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput, optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
}

// Route53Provider implements ddns.Provider for AWS Route 53.
//
// It should be constructed using NewRoute53Provider, or NewRoute53ProviderFromAPI in tests.
type Route53Provider struct {
	api    Route53API
	logger zerolog.Logger
}

// NewRoute53Provider creates a provider using the SDK's default credential chain
// (environment, shared config and credentials files, SSO, instance roles).
// A non-empty profile selects a named profile from the shared config.
// SDK retry messages are logged at debug level through the provider's logger.
func NewRoute53Provider(ctx context.Context, profile string) (*Route53Provider, error) {
	p := NewRoute53ProviderFromAPI(nil)
	opts := []func(*config.LoadOptions) error{
		config.WithDefaultRegion(defaultRegion),
		config.WithClientLogMode(aws.LogRetries),
		config.WithLogger(logging.LoggerFunc(func(classification logging.Classification, format string, v ...interface{}) {
			p.logger.Debug().Str("source", "aws-sdk").Str("classification", string(classification)).Msgf(format, v...)
		})),
	}
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}
	p.api = route53.NewFromConfig(cfg)
	return p, nil
}

func NewRoute53ProviderFromAPI(api Route53API) *Route53Provider {
	return &Route53Provider{api: api, logger: zerolog.Nop()}
}

func (p *Route53Provider) SetLogger(logger zerolog.Logger) { p.logger = logger }

// HostedZoneID looks up the zone ID for domain (no trailing dot).
//
// Only the first zone at or after domain in lexical order is fetched,
// and it is only accepted if its name is exactly domain.
func (p *Route53Provider) HostedZoneID(ctx context.Context, domain string) (string, error) {
	if p.api == nil {
		return "", errors.New("ddns.Route53Provider.HostedZoneID: ddns.Route53Provider should be constructed with ddns.NewRoute53Provider")
	}

	p.logger.Debug().Str("domain", domain).Msg("looking up hosted zone")
	resp, err := p.api.ListHostedZonesByName(ctx, &route53.ListHostedZonesByNameInput{
		DNSName:  aws.String(domain),
		MaxItems: aws.Int32(1),
	})
	if err != nil {
		return "", fmt.Errorf("error listing hosted zones: %w", err)
	}
	if len(resp.HostedZones) == 0 {
		return "", fmt.Errorf("%s: %w", domain, ErrZoneNotFound)
	}

	zone := resp.HostedZones[0]
	if aws.ToString(zone.Name) != domain+"." {
		p.logger.Debug().Str("domain", domain).Str("zone", aws.ToString(zone.Name)).Msg("closest hosted zone does not match")
		return "", fmt.Errorf("%s: %w", domain, ErrZoneNotFound)
	}
	p.logger.Debug().Str("zone_id", aws.ToString(zone.Id)).Msg("got hosted zone")
	return aws.ToString(zone.Id), nil
}

// Upsert points the A record for name at addr, creating it if needed.
func (p *Route53Provider) Upsert(ctx context.Context, zoneID, name string, addr netip.Addr) (*route53.ChangeResourceRecordSetsOutput, error) {
	if p.api == nil {
		return nil, errors.New("ddns.Route53Provider.Upsert: ddns.Route53Provider should be constructed with ddns.NewRoute53Provider")
	}
	if !addr.Is4() {
		return nil, fmt.Errorf("cannot write %s to an A record: %w", addr, ErrNotIPv4)
	}

	p.logger.Debug().Str("zone_id", zoneID).Str("name", name).Stringer("addr", addr).Msg("upserting A record")
	resp, err := p.api.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zoneID),
		ChangeBatch: &types.ChangeBatch{
			Comment: aws.String(changeComment),
			Changes: []types.Change{
				{
					Action: types.ChangeActionUpsert,
					ResourceRecordSet: &types.ResourceRecordSet{
						Name: aws.String(name),
						Type: types.RRTypeA,
						TTL:  aws.Int64(RecordTTL),
						ResourceRecords: []types.ResourceRecord{
							{Value: aws.String(addr.String())},
						},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error changing record set %s: %w", name, err)
	}
	return resp, nil
}
