package commands

import (
	"github.com/spf13/cobra"

	"lockbox/internal/app"
	"lockbox/internal/logging"
)

var (
	homeFlag       string
	serverFlag     string
	masterPassword string
	verbose        bool
	debug          bool

	appCtx *app.App
	logger logging.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "lockbox",
		Short:         "Password vault CLI with client-side encryption",
		Long:          "lockbox stores credentials on a vault server that only ever sees ciphertext.\nSecret fields are sealed with a key derived from your master password; the\nkey lives in memory for the duration of a session and is never persisted.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(homeFlag)
			if err != nil {
				return err
			}
			if serverFlag != "" {
				cfg.Server.URL = serverFlag
			}
			if verbose {
				cfg.Log.Verbose = true
			}
			if debug {
				cfg.Log.Debug = true
			}

			logger = logging.Logger{Verbose: cfg.Log.Verbose, Debug: cfg.Log.Debug}
			logger.Debugf("home: %s, server: %s", cfg.Home, cfg.Server.URL)

			appCtx, err = app.New(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&homeFlag, "home", "", "config dir (default ~/.lockbox)")
	root.PersistentFlags().StringVarP(&masterPassword, "master-password", "p", "", "master password (prompted if omitted)")
	root.PersistentFlags().StringVar(&serverFlag, "server", "", "vault server base URL")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug output")

	root.AddCommand(
		signupCmd(),
		loginCmd(),
		logoutCmd(),
		statusCmd(),
		addCmd(),
		listCmd(),
		showCmd(),
		updateCmd(),
		removeCmd(),
		generateCmd(),
	)
	return root.Execute()
}
