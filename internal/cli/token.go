package cli

import (
	"fmt"

	"gpuadvisor/internal/middleware"
	"gpuadvisor/internal/services"

	"github.com/spf13/cobra"
)

func (a *app) tokenCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a dashboard token for the live stats WebSocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !middleware.NewInputValidator().ValidateClientName(name) {
				return fmt.Errorf("invalid client name %q: use letters, digits, '-', '_' or '.'", name)
			}
			auth := services.NewAuthService(a.cfg.Server.SecretKey, "", a.cfg.Server.TokenExpiry)
			token, err := auth.GenerateToken(name)
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}
			a.println(token)
			fmt.Fprintf(a.errOut, "Connect with ws://%s/ws?token=%s (valid for %s)\n", a.cfg.Server.Addr, token, auth.TokenExpiry())
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "dashboard", "client name embedded in the token")
	return cmd
}
