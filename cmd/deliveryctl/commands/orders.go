package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arbadelivery/deliverykit/pkg/apiclient"
	"github.com/arbadelivery/deliverykit/pkg/orders"
)

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage delivery orders",
	}
	cmd.AddCommand(ordersListCmd(), ordersShowCmd(), ordersCreateCmd())
	return cmd
}

func ordersListCmd() *cobra.Command {
	var onlyOpen bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.client.GetOrders(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tPICKUP\tDROPOFF\tPRICE")
			for _, o := range list {
				if onlyOpen && !o.Open() {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n",
					o.ID, o.Status, o.PickupAddress, o.DropoffAddress, o.Price)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&onlyOpen, "open", false, "show only orders still in progress")
	return cmd
}

func ordersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show one order with its possible next statuses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := app.client.GetOrder(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Order %s\n", o.ID)
			fmt.Printf("  Status:    %s\n", o.Status)
			fmt.Printf("  Pickup:    %s\n", o.PickupAddress)
			fmt.Printf("  Dropoff:   %s\n", o.DropoffAddress)
			fmt.Printf("  Recipient: %s (%s)\n", o.RecipientName, o.RecipientPhone)
			fmt.Printf("  Price:     %.2f\n", o.Price)
			if o.Assigned() {
				fmt.Printf("  Courier:   %s\n", o.CourierID)
			}
			if o.Notes != "" {
				fmt.Printf("  Notes:     %s\n", o.Notes)
			}

			if next := orders.NextStatuses(o.Status); len(next) > 0 {
				fmt.Printf("  Next:      %v\n", next)
			}
			return nil
		},
	}
}

func ordersCreateCmd() *cobra.Command {
	var req apiclient.CreateOrderRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Place a new delivery order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkForm("order", map[string]string{
				"pickup_address":  req.PickupAddress,
				"dropoff_address": req.DropoffAddress,
				"recipient_name":  req.RecipientName,
				"recipient_phone": req.RecipientPhone,
				"notes":           req.Notes,
			}); err != nil {
				return err
			}
			if req.Price < 0 {
				return fmt.Errorf("price cannot be negative")
			}

			o, err := app.client.CreateOrder(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Printf("Created order %s (%s)\n", o.ID, o.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.PickupAddress, "pickup", "", "pickup address")
	cmd.Flags().StringVar(&req.DropoffAddress, "dropoff", "", "dropoff address")
	cmd.Flags().StringVar(&req.RecipientName, "recipient", "", "recipient name")
	cmd.Flags().StringVar(&req.RecipientPhone, "phone", "", "recipient phone number")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "courier notes")
	cmd.Flags().Float64Var(&req.Price, "price", 0, "delivery price")
	return cmd
}
