package commands

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arbadelivery/deliverykit/pkg/apiclient"
	"github.com/arbadelivery/deliverykit/pkg/config"
	"github.com/arbadelivery/deliverykit/pkg/logger"
	"github.com/arbadelivery/deliverykit/pkg/realtime"
	"github.com/arbadelivery/deliverykit/pkg/session"
	"github.com/arbadelivery/deliverykit/pkg/validator"
)

// forms.yaml holds the validation contract for every interactive command,
// versioned next to the commands that use it.
//
//go:embed forms.yaml
var formsYAML []byte

// appContext holds the wired-up dependencies shared by all commands.
type appContext struct {
	logger   *slog.Logger
	store    session.Store
	client   *apiclient.Client
	forms    map[string]validator.RuleSet
	interval time.Duration
}

var (
	sessionPath string
	verbose     bool

	app *appContext
)

// Execute wires the application together and runs the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:           "deliveryctl",
		Short:         "Terminal client for the delivery platform",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			forms, err := validator.MultiRuleSetFromYAML(formsYAML)
			if err != nil {
				return fmt.Errorf("load form rules: %w", err)
			}

			var apiCfg apiclient.Config
			if err := config.Load(&apiCfg); err != nil {
				return err
			}
			var rtCfg realtime.Config
			if err := config.Load(&rtCfg); err != nil {
				return err
			}

			if sessionPath == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				sessionPath = filepath.Join(home, ".deliveryctl", "session.json")
			}
			store := session.NewFileStore(sessionPath)

			logOpts := []logger.Option{logger.WithProduction("deliveryctl"), logger.WithOutput(os.Stderr)}
			if verbose {
				logOpts = []logger.Option{logger.WithDevelopment("deliveryctl"), logger.WithOutput(os.Stderr)}
			}
			log := logger.New(logOpts...)

			client, err := apiclient.New(apiCfg,
				apiclient.WithTokenSource(apiclient.NewSessionTokenSource(store)),
				apiclient.WithLogger(log),
			)
			if err != nil {
				return err
			}

			app = &appContext{
				logger:   log,
				store:    store,
				client:   client,
				forms:    forms,
				interval: rtCfg.Interval,
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&sessionPath, "session", "", "session file (default ~/.deliveryctl/session.json)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(loginCmd(), registerCmd(), logoutCmd(), ordersCmd(), watchCmd())
	return root.Execute()
}

// checkForm validates the given values against a named rule set and turns
// failures into a single error listing each bad field.
func checkForm(form string, values map[string]string) error {
	rules, ok := app.forms[form]
	if !ok {
		return fmt.Errorf("no rule set for form %q", form)
	}

	res := validator.ValidateForm(values, rules)
	if res.Valid {
		return nil
	}

	fields := make([]string, 0, len(res.Errors))
	for field := range res.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("invalid input:")
	for _, field := range fields {
		fmt.Fprintf(&b, "\n  %s: %s", field, res.Errors[field])
	}
	return fmt.Errorf("%s", b.String())
}

// saveSession persists the auth session returned by login or registration.
func saveSession(cmd *cobra.Command, sess *apiclient.AuthSession) error {
	ctx := cmd.Context()
	for key, value := range map[string]string{
		session.KeyAuthToken: sess.Token,
		session.KeyUserID:    sess.UserID,
		session.KeyUserRole:  sess.Role,
	} {
		if err := app.store.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
