// Command update-route53 points an A record in Route 53 at this machine's public address.
//
//	update-route53 home.example.com
//	update-route53 home.example.com --ip 203.0.113.7 --always
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Travis-Britz/route53-ddns"
	"github.com/aws/smithy-go"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(&app{stdout: os.Stdout, stderr: os.Stderr})
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describe(err))
		stop()
		os.Exit(1)
	}
}

type app struct {
	stdout io.Writer
	stderr io.Writer

	// provider replaces Route 53 when set.
	provider ddns.Provider

	ip         string
	always     bool
	iface      string
	nameserver string
	verbose    bool
	envFile    string
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-route53 <name>",
		Short: "Point a Route 53 A record at this machine",
		Long: `Point a Route 53 A record at this machine.

The address is the local outbound address when it is public. Otherwise it is
looked up from an external echo service. The record is only written when it
does not already resolve to that address, unless --always is given.

AWS credentials come from the usual SDK sources. Settings can also be given as
UPDATE_ROUTE53_* environment variables or in an env file.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), args[0], cmd.Flags().Changed("env-file"))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&a.ip, "ip", "", "IPv4 address to set instead of detecting one")
	flags.BoolVar(&a.always, "always", false, "update without checking the current record")
	flags.StringVar(&a.iface, "interface", "", "take the address from this network interface")
	flags.StringVar(&a.nameserver, "nameserver", "", "check the current record with this nameserver (host:port)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file to load settings from")
	cmd.MarkFlagsMutuallyExclusive("ip", "interface")

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)
	return cmd
}

func (a *app) run(ctx context.Context, name string, envFileRequired bool) error {
	var resolver ddns.Resolver
	if a.ip != "" {
		var err error
		if resolver, err = ddns.FromString(a.ip); err != nil {
			return fmt.Errorf("invalid --ip %q: %w", a.ip, err)
		}
	}

	cfg, skipped, err := loadConfig(a.envFile, envFileRequired)
	if err != nil {
		return err
	}
	logger, err := newLogger(a.stderr, a.verbose, cfg.LogLevel)
	if err != nil {
		return err
	}
	if skipped != nil {
		logger.Debug().Err(skipped).Str("env_file", a.envFile).Msg("ignoring env file")
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	options := []ddns.Option{
		ddns.WithLogger(logger),
		ddns.WithOutput(a.stdout),
		ddns.WithUserAgent(cfg.UserAgent),
	}
	if a.provider != nil {
		options = append(options, ddns.UsingProvider(a.provider))
	} else {
		options = append(options, ddns.UsingRoute53(ctx, cfg.AWSProfile))
	}
	switch {
	case resolver != nil:
		options = append(options, ddns.UsingResolver(resolver))
	case a.iface != "":
		options = append(options, ddns.UsingResolver(ddns.InterfaceResolver(a.iface)))
	default:
		options = append(options, ddns.UsingWebResolver(cfg.EchoURL))
	}
	if a.nameserver != "" {
		options = append(options, ddns.UsingChecker(ddns.NameserverChecker{Server: a.nameserver}))
	}

	u, err := ddns.New(options...)
	if err != nil {
		return err
	}

	_, err = u.Run(ctx, name, a.always)
	return err
}

// describe adds the AWS error code to errors returned by the Route 53 API.
func describe(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s (code: %s)", err, apiErr.ErrorCode())
	}
	return err.Error()
}
