package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbadelivery/deliverykit/pkg/apiclient"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkForm("login", map[string]string{
				"email":    email,
				"password": password,
			}); err != nil {
				return err
			}

			sess, err := app.client.Login(cmd.Context(), apiclient.Credentials{
				Email:    email,
				Password: password,
			})
			if err != nil {
				return err
			}
			if err := saveSession(cmd, sess); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", email, sess.Role)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}
