package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbadelivery/deliverykit/pkg/logger"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the session and clear local credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Server-side invalidation is best effort: an expired token must
			// not keep the user from clearing their local session.
			if err := app.client.Logout(cmd.Context()); err != nil {
				app.logger.Warn("server-side logout failed", logger.Error(err))
			}

			if err := app.store.Clear(cmd.Context()); err != nil {
				return err
			}

			fmt.Println("Logged out")
			return nil
		},
	}
}
