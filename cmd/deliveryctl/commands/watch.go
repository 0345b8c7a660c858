package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/arbadelivery/deliverykit/pkg/logger"
	"github.com/arbadelivery/deliverykit/pkg/notifications"
	"github.com/arbadelivery/deliverykit/pkg/realtime"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stream order and notification updates until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			center := notifications.NewCenter(
				notifications.NewMemoryStore(),
				notifications.WithLogger(app.logger),
			)

			tracker := realtime.New(app.client,
				realtime.WithInterval(app.interval),
				realtime.WithBackoff(realtime.ExponentialBackoff{JitterFactor: 0.2}),
				realtime.WithLogger(app.logger),
			)
			defer tracker.Close()

			sub := tracker.Subscribe(func(u realtime.Updates) {
				ctx := cmd.Context()

				for _, o := range u.Orders {
					fmt.Printf("[%s] order %s is now %s\n",
						u.Timestamp.Format("15:04:05"), o.ID, o.Status)
				}

				if len(u.Notifications) == 0 {
					return
				}
				if err := center.Ingest(ctx, u.Notifications); err != nil {
					app.logger.Warn("notification ingest incomplete", logger.Error(err))
				}
				for _, n := range u.Notifications {
					fmt.Printf("[%s] %s: %s\n",
						u.Timestamp.Format("15:04:05"), n.Title, n.Message)
				}
				if unread, err := center.CountUnread(ctx); err == nil {
					fmt.Printf("  %d unread\n", unread)
				}
			})
			defer sub.Stop()

			fmt.Printf("Watching for updates every %s, press Ctrl-C to stop\n", app.interval)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			select {
			case <-stop:
			case <-cmd.Context().Done():
			}

			fmt.Println("Stopped")
			return nil
		},
	}
}
