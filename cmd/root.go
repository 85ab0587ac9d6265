package cmd

import (
	"fmt"
	"io"
	"os"

	"room-cli/api"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	outputJSON    bool
	outputCompact bool
	debug         bool
	endpoint      string
	cfg           Config
	client        = api.NewClient()
)

// logOutput is where the console logger writes.
var logOutput io.Writer = os.Stderr

var rootCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Meeting room availability",
	Long:  "Browse meeting rooms and their availability for a chosen hour. Without a subcommand the room listing is shown.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(debug)
		if outputJSON && outputCompact {
			return fmt.Errorf("choose either --json or --compact")
		}
		cfg.apply(client)
		if endpoint != "" {
			client.Endpoint = endpoint
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, listOptions{})
	},
	SilenceUsage: true,
}

func Execute() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(scannerCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().BoolVar(&outputCompact, "compact", false, "Output compact text")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Room data URL (overrides config and $"+envEndpoint+")")
}

func initConfig() {
	setupLogging(debug)
	loaded, err := loadConfig()
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring unreadable config file")
	}
	loaded, err = loadEnv(loaded, ".env")
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring environment overrides")
	}
	cfg = loaded
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: logOutput, NoColor: logOutput != os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
