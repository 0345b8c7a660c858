package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arbadelivery/deliverykit/pkg/apiclient"
)

func registerCmd() *cobra.Command {
	var name, email, phone, password, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkForm("register", map[string]string{
				"name":     name,
				"email":    email,
				"phone":    phone,
				"password": password,
				"role":     role,
			}); err != nil {
				return err
			}

			sess, err := app.client.Register(cmd.Context(), apiclient.RegisterRequest{
				Name:     name,
				Email:    email,
				Phone:    phone,
				Password: password,
				Role:     role,
			})
			if err != nil {
				return err
			}
			if err := saveSession(cmd, sess); err != nil {
				return err
			}

			fmt.Printf("Registered %s as %s\n", email, sess.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVar(&phone, "phone", "", "contact phone number")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&role, "role", "customer", "account role: customer, courier or admin")
	return cmd
}
