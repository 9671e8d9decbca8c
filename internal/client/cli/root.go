package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/buildinfo"
	"github.com/dmitrijs2005/gophsocial/internal/client/client"
	"github.com/dmitrijs2005/gophsocial/internal/client/config"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	serverURL  string
	grpcAddr   string
	timeout    time.Duration
	jsonOutput bool
}

func (o *options) api() *client.HTTPClient {
	return client.NewHTTPClient(o.serverURL, &http.Client{Timeout: o.timeout})
}

// loadConfig fills every persistent flag the user did not set from the
// config file.
func (o *options) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("server") {
		o.serverURL = cfg.ServerURL
	}
	if !flags.Changed("grpc") {
		o.grpcAddr = cfg.GRPCAddr
	}
	if !flags.Changed("timeout") {
		o.timeout = cfg.Timeout
	}
	return nil
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	o := &options{}

	defaults := &config.Config{}
	defaults.LoadDefaults()

	root := &cobra.Command{
		Use:           "gophsocial",
		Short:         "Command-line client for the gophsocial server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.loadConfig(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "config file (.json, .yaml or .yml)")
	pf.StringVar(&o.serverURL, "server", defaults.ServerURL, "REST API base URL")
	pf.StringVar(&o.grpcAddr, "grpc", defaults.GRPCAddr, "gRPC health endpoint address")
	pf.DurationVar(&o.timeout, "timeout", defaults.Timeout, "per-request timeout")
	pf.BoolVar(&o.jsonOutput, "json", false, "Output command results in JSON format")

	root.AddCommand(
		newUsersCommand(o),
		newPostsCommand(o),
		newCommentsCommand(o),
		newHealthCommand(o),
		newVersionCommand(),
	)

	return root
}

// Execute runs the CLI with os.Args and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
