package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/buemura/zapcli/internal/config"
	"github.com/buemura/zapcli/internal/console"
	"github.com/buemura/zapcli/internal/scan"
	"github.com/buemura/zapcli/internal/zap"
	"github.com/spf13/cobra"
)

var version = "dev"

// daemonStartTimeout bounds how long start and self-contained scans wait
// for the daemon to answer its first API call.
const daemonStartTimeout = 60 * time.Second

// pollInterval is the readiness probe interval, shortened by tests.
var pollInterval = scan.DefaultPollInterval

var (
	boringFlag   bool
	verboseFlag  bool
	zapPathFlag  string
	portFlag     int
	zapURLFlag   string
	apiKeyFlag   string
	logPathFlag  string
	softFailFlag bool
)

// appConfig holds the loaded configuration, available after PersistentPreRunE.
var appConfig *config.Config

// zapClient is the daemon client used by every command, available after
// PersistentPreRunE.
var zapClient zap.Client

// newClient builds the daemon client; tests swap it for a fake.
var newClient = func(cfg *config.Config) zap.Client {
	return zap.NewAPIClient(cfg)
}

var rootCmd = &cobra.Command{
	Use:   "zap-cli",
	Short: "A commandline tool for driving the OWASP ZAP daemon",
	Long: `zap-cli drives a running OWASP ZAP daemon over its API: open a
target, spider it, run active vulnerability scans, and report any
alerts found.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		config.ApplyFlags(cfg, cmd)
		console.Configure(verboseFlag, boringFlag)

		appConfig = cfg
		zapClient = newClient(cfg)
		return nil
	},
}

// statusError carries an explicit process exit code out of a command.
// A nil wrapped error means the command already reported its result and
// only the exit code remains.
type statusError struct {
	code int
	err  error
}

func (e *statusError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *statusError) Unwrap() error { return e.err }

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return scan.ExitOK
	}

	var status *statusError
	if errors.As(err, &status) {
		if status.err != nil {
			console.Error("%v", status.err)
		}
		return status.code
	}

	console.Error("%v", err)
	return scan.ExitError
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&boringFlag, "boring", false, "remove color from console output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "add more verbose debugging output")
	rootCmd.PersistentFlags().StringVar(&zapPathFlag, "zap-path", "/zap", "path to the ZAP daemon installation")
	rootCmd.PersistentFlags().IntVarP(&portFlag, "port", "p", 8090, "port of the ZAP proxy")
	rootCmd.PersistentFlags().StringVar(&zapURLFlag, "zap-url", "http://127.0.0.1", "URL of the ZAP proxy")
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "API key for the ZAP API if required")
	rootCmd.PersistentFlags().StringVar(&logPathFlag, "log-path", "", "directory in which to save the ZAP output log file")
	rootCmd.PersistentFlags().BoolVar(&softFailFlag, "soft-fail", false, "run scans but suppress the alert-count exit code")
}
