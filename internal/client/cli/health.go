package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophsocial/internal/client/client"
	"github.com/dmitrijs2005/gophsocial/internal/common"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

// healthDialOptions are appended to the health client's dial options.
// Tests use it to dial an in-memory listener.
var healthDialOptions []grpc.DialOption

func newHealthCommand(o *options) *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Ask the gRPC health endpoint whether the server is serving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hc, err := client.NewHealthClient(o.grpcAddr, healthDialOptions...)
			if err != nil {
				return err
			}
			defer hc.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
			defer cancel()

			st, err := hc.Check(ctx, service)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if o.jsonOutput {
				if err := printJSON(out, map[string]string{"service": service, "status": st}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, st)
			}

			if st != "SERVING" {
				return errors.New("server is not healthy")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", common.ResourceStoreServiceName, "service to check; empty checks the whole server")

	return cmd
}
