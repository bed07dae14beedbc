package ddns

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/netip"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/rs/zerolog"
)

// NoChangeMessage is printed when the record already holds the address.
const NoChangeMessage = "Not updating, no change detected."

// DefaultResolver returns the machine's outbound address when it is public,
// and otherwise asks DefaultServiceURL.
func DefaultResolver() Resolver {
	u, _ := url.Parse(DefaultServiceURL)
	return PublicResolver{
		Local: LocalResolver{},
		Web:   &webResolver{serviceURL: u, userAgent: DefaultUserAgent},
	}
}

// New returns an Updater.
// A Provider is required; UsingRoute53 is the one shipped with this package.
// The resolver defaults to DefaultResolver and the checker to SystemChecker.
func New(options ...Option) (*Updater, error) {
	u := &Updater{
		Resolver: DefaultResolver(),
		Checker:  SystemChecker{},
		logger:   zerolog.Nop(),
		out:      os.Stdout,
	}
	for i, opt := range options {
		if err := opt(u); err != nil {
			return nil, fmt.Errorf("ddns.New: option %d returned an error: %w", i, err)
		}
	}

	if u.Provider == nil {
		return nil, fmt.Errorf("ddns.New: no DNS provider was registered and there is no default option - use ddns.UsingRoute53 or similar")
	}

	// settings that reach into dependencies are applied last so option order doesn't matter
	u.propagate()
	return u, nil
}

type Option func(*Updater) error

func UsingRoute53(ctx context.Context, profile string) Option {
	return func(u *Updater) (err error) {
		if u.Provider, err = NewRoute53Provider(ctx, profile); err != nil {
			return fmt.Errorf("ddns.UsingRoute53: error creating route53 DNS provider: %w", err)
		}
		return nil
	}
}

func UsingProvider(p Provider) Option {
	return func(u *Updater) error {
		u.Provider = p
		return nil
	}
}

func UsingResolver(resolver Resolver) Option {
	return func(u *Updater) error {
		if resolver == nil {
			resolver = DefaultResolver()
		}
		u.Resolver = resolver
		return nil
	}
}

// UsingWebResolver keeps the local probe but replaces the external lookup service.
func UsingWebResolver(serviceURL string) Option {
	return func(u *Updater) error {
		web, err := WebResolver(serviceURL)
		if err != nil {
			return err
		}
		u.Resolver = PublicResolver{Local: LocalResolver{}, Web: web}
		return nil
	}
}

func UsingChecker(checker Checker) Option {
	return func(u *Updater) error {
		if checker == nil {
			checker = SystemChecker{}
		}
		u.Checker = checker
		return nil
	}
}

func UsingHTTPClient(httpclient *http.Client) Option {
	return func(u *Updater) error {
		u.httpClient = httpclient
		return nil
	}
}

func WithUserAgent(ua string) Option {
	return func(u *Updater) error {
		u.userAgent = ua
		return nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(u *Updater) error {
		u.logger = logger
		return nil
	}
}

// WithOutput sets where the provider response or NoChangeMessage is written. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(u *Updater) error {
		if w == nil {
			w = io.Discard
		}
		u.out = w
		return nil
	}
}

func (u *Updater) propagate() {
	type setLogger interface {
		SetLogger(zerolog.Logger)
	}
	type setHTTPClient interface {
		SetHTTPClient(*http.Client)
	}
	type setUserAgent interface {
		SetUserAgent(string)
	}

	if p, ok := u.Provider.(setLogger); ok {
		p.SetLogger(u.logger)
	}

	web := u.Resolver
	if pr, ok := u.Resolver.(PublicResolver); ok {
		web = pr.Web
	}
	if hc, ok := web.(setHTTPClient); ok && u.httpClient != nil {
		hc.SetHTTPClient(u.httpClient)
	}
	if ua, ok := web.(setUserAgent); ok && u.userAgent != "" {
		ua.SetUserAgent(u.userAgent)
	}
}

// Updater keeps a single A record pointed at this machine.
type Updater struct {
	Resolver
	Provider
	Checker
	logger     zerolog.Logger
	out        io.Writer
	httpClient *http.Client
	userAgent  string
}

// Result describes what an update did.
type Result struct {
	Name    string
	ZoneID  string
	Addr    netip.Addr
	Skipped bool
	// Change is the provider's record of the submitted change; nil when Skipped.
	Change *types.ChangeInfo
}

// Run resolves the current address and calls Update with it.
func (u *Updater) Run(ctx context.Context, name string, always bool) (Result, error) {
	addr, err := u.Resolve(ctx)
	if err != nil {
		return Result{Name: name}, fmt.Errorf("error getting IP: %w", err)
	}
	u.logger.Debug().Stringer("addr", addr).Msg("resolved address")
	return u.Update(ctx, name, addr, always)
}

// Update points name at addr.
//
// Unless always is set, the write is skipped when name already resolves to addr and nothing else;
// NoChangeMessage is written to the output instead of the provider response.
func (u *Updater) Update(ctx context.Context, name string, addr netip.Addr, always bool) (Result, error) {
	res := Result{Name: name, Addr: addr}
	if !addr.Is4() {
		return res, fmt.Errorf("cannot point %s at %s: %w", name, addr, ErrNotIPv4)
	}

	domain := DomainFromFQDN(name)
	u.logger.Debug().Str("name", name).Str("domain", domain).Msg("derived domain")

	zoneID, err := u.HostedZoneID(ctx, domain)
	if err != nil {
		return res, fmt.Errorf("unable to get zone ID for %s: %w", domain, err)
	}
	res.ZoneID = zoneID

	if !always {
		current, err := u.ResolvesTo(ctx, name, addr)
		if err != nil {
			return res, fmt.Errorf("error checking current records for %s: %w", name, err)
		}
		if current {
			u.logger.Info().Str("name", name).Stringer("addr", addr).Msg("record is current")
			res.Skipped = true
			_, err := fmt.Fprintln(u.out, NoChangeMessage)
			return res, err
		}
	}

	resp, err := u.Upsert(ctx, zoneID, name, addr)
	if err != nil {
		return res, fmt.Errorf("error updating %s with new IP: %w", name, err)
	}
	if resp == nil || resp.ChangeInfo == nil {
		return res, fmt.Errorf("error updating %s: provider returned no change info", name)
	}
	res.Change = resp.ChangeInfo
	u.logger.Info().Str("name", name).Stringer("addr", addr).Str("zone_id", zoneID).Msg("record updated")

	b, err := json.MarshalIndent(res.Change, "", "  ")
	if err != nil {
		return res, fmt.Errorf("error encoding change info: %w", err)
	}
	_, err = fmt.Fprintln(u.out, string(b))
	return res, err
}
