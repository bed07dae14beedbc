package ddns_test

import (
	"context"
	"log"
	"net/netip"
	"os"
	"time"

	"github.com/Travis-Britz/route53-ddns"
	"github.com/rs/zerolog"
)

func ExampleNew() {
	ctx := context.Background()
	u, err := ddns.New(
		ddns.UsingRoute53(ctx, ""),
		ddns.WithLogger(zerolog.New(os.Stderr)),
	)
	if err != nil {
		log.Fatalf("error creating updater: %s", err)
	}
	// run once:
	if _, err := u.Run(ctx, "home.example.com", false); err != nil {
		log.Fatalf("ddns update failed: %s", err)
	}
}

func ExampleWebResolver() {
	// I'm not vouching for this service, but it does return the IP of the client connection.
	// If possible, run your own and provide the URL here instead.
	r, err := ddns.WebResolver("https://checkip.amazonaws.com/")
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()
	u, err := ddns.New(
		ddns.UsingRoute53(ctx, ""),
		ddns.UsingResolver(r),
	)
	if err != nil {
		log.Fatalf("error creating updater: %s", err)
	}
	if _, err := u.Run(ctx, "home.example.com", false); err != nil {
		log.Fatalf("ddns update failed: %s", err)
	}
}

func ExampleInterfaceResolver() {
	ctx := context.Background()
	u, err := ddns.New(
		ddns.UsingRoute53(ctx, "home"),
		ddns.UsingResolver(ddns.InterfaceResolver("eth0")),
	)
	if err != nil {
		log.Fatalf("error creating updater: %s", err)
	}
	if _, err := u.Run(ctx, "lan.example.com", true); err != nil {
		log.Fatalf("ddns update failed: %s", err)
	}
}

func ExampleNameserverChecker() {
	ctx := context.Background()
	u, err := ddns.New(
		ddns.UsingRoute53(ctx, ""),
		ddns.UsingChecker(ddns.NameserverChecker{Server: "ns-1.awsdns-01.org:53"}),
	)
	if err != nil {
		log.Fatalf("error creating updater: %s", err)
	}
	if _, err := u.Run(ctx, "home.example.com", false); err != nil {
		log.Fatalf("ddns update failed: %s", err)
	}
}

func ExampleResolverFunc() {
	fn := func(ctx context.Context) (netip.Addr, error) {
		select {
		case <-ctx.Done():
			return netip.Addr{}, ctx.Err()
		case <-time.After(100 * time.Millisecond): // simulating some lookup method
			return netip.ParseAddr("192.0.2.10")
		}
	}
	ctx := context.Background()
	u, err := ddns.New(
		ddns.UsingRoute53(ctx, ""),
		ddns.UsingResolver(ddns.ResolverFunc(fn)),
	)
	if err != nil {
		log.Fatalf("error creating updater: %s", err)
	}
	if _, err := u.Run(ctx, "home.example.com", false); err != nil {
		log.Fatalf("ddns update failed: %s", err)
	}
}
