// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/morshues/msync/internal/client"
	"github.com/morshues/msync/internal/config"
	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/models"
)

// cliFlags are the persistent flags shared by every subcommand. Non-empty
// values override the environment, JSON file, and defaults.
type cliFlags struct {
	configPath string
	serverURL  string
	dbDSN      string
	logPath    string
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:           "msync",
		Short:         "Bidirectional folder-sync client",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "path to a JSON config file")
	root.PersistentFlags().StringVar(&flags.serverURL, "server", "", "remote sync server base URL")
	root.PersistentFlags().StringVar(&flags.dbDSN, "db", "", "local task database path")
	root.PersistentFlags().StringVar(&flags.logPath, "log", "", "daemon log file path")

	root.AddCommand(
		newRunCmd(flags),
		newLoginCmd(flags),
		newLogoutCmd(flags),
		newFolderCmd(flags),
		newScanCmd(flags),
		newCompareCmd(flags),
		newModeCmd(flags),
		newStatusCmd(flags),
	)
	return root
}

func (f *cliFlags) loadConfig() (*config.StructuredConfig, error) {
	overrides := &config.StructuredConfig{JSONFilePath: f.configPath}
	overrides.Server.BaseURL = f.serverURL
	overrides.Storage.DB.DSN = f.dbDSN
	overrides.App.LogPath = f.logPath
	return config.GetConfig(overrides)
}

// newOneShotApp wires the client without daemon logging. Short-lived commands
// report through their own output and the returned error, so engine logs stay
// out of the way.
func (f *cliFlags) newOneShotApp() (*client.App, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return client.NewApp(cfg, logger.Nop())
}

// ── run ──────────────────────────────────────────────────────────────────────

func newRunCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the sync daemon until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printBuildInfo()

			cfg, err := f.loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log := logger.NewDaemonLogger("msync", cfg.App.LogPath)
			app, err := client.NewApp(cfg, log)
			if err != nil {
				log.Error().Err(err).Msg("init client app error")
				return err
			}
			return app.Run(cmd.Context())
		},
	}
}

// ── auth ─────────────────────────────────────────────────────────────────────

func newLoginCmd(f *cliFlags) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the sync server and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := f.newOneShotApp()
			if err != nil {
				return err
			}
			if err := app.Services().TokenService.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Printf("logged in as %s\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := f.newOneShotApp()
			if err != nil {
				return err
			}
			if err := app.Services().TokenService.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("logged out")
			return nil
		},
	}
}

// ── folder ───────────────────────────────────────────────────────────────────

func newFolderCmd(f *cliFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage watched folders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <path>",
		Short: "Register a folder for sync and scan it immediately",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := f.newOneShotApp()
			if err != nil {
				return err
			}
			folder, err := app.Services().Settings.AddFolder(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("watching %s\n", folder.Path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <path>",
		Short: "Stop syncing a folder and drop its queued tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := f.newOneShotApp()
			if err != nil {
				return err
			}
			if err := app.Services().Settings.RemoveFolder(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List watched folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := f.newOneShotApp()
			if err != nil {
				return err
			}
			folders, err := app.Services().Settings.Folders(cmd.Context())
			if err != nil {
				return err
			}
			if len(folders) == 0 {
				fmt.Println("no folders watched")
				return nil
			}
			for _, folder := range folders {
				scanned := "never"
				if folder.LastScanned != nil {
					scanned = folder.LastScanned.Format(time.RFC3339)
				}
				fmt.Printf("%s\t(last scanned: %s)\n", folder.Path, scanned)
			}
			return nil
		},
	})

	return cmd
}

// ── scan / compare ───────────────────────────────────────────────────────────

func newScanCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "scan [path]",
		Short: "Diff watched folders against the server and enqueue tasks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := f.newOneShotApp()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				created, err := app.Services().Scanner.ScanFolder(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("%d task(s) enqueued\n", created)
				return nil
			}
			return app.Services().Scanner.ScanAll(cmd.Context())
		},
	}
}

func newCompareCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <path>",
		Short: "Show the pending diff for a folder without enqueueing tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := f.newOneShotApp()
			if err != nil {
				return err
			}
			diff, err := app.Services().Scanner.Preview(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("to upload (%d):\n", len(diff.Upload))
			for _, entry := range diff.Upload {
				fmt.Printf("  %s\t%d bytes\n", entry.Name, entry.Size)
			}
			fmt.Printf("to download (%d):\n", len(diff.Download))
			for _, entry := range diff.Download {
				fmt.Printf("  %s\t%d bytes\n", entry.Name, entry.Size)
			}
			return nil
		},
	}
}

// ── mode / status ────────────────────────────────────────────────────────────

func newModeCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mode [full|download-only|upload-only|disabled]",
		Short: "Show or change the sync mode",
		Long: `Show or change the sync mode.

Changing the mode purges queued tasks of the now-disallowed direction(s)
immediately. The mode itself is read from configuration at startup: a daemon
that is already running keeps its current mode and transfers until it is
restarted with the new setting.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := f.newOneShotApp()
			if err != nil {
				return err
			}
			settings := app.Services().Settings

			if len(args) == 0 {
				fmt.Println(settings.SyncMode())
				return nil
			}

			mode, err := models.ParseSyncMode(args[0])
			if err != nil {
				return err
			}
			if err := settings.SetSyncMode(cmd.Context(), mode); err != nil {
				return err
			}
			fmt.Printf("sync mode set to %s\n", mode)
			return nil
		},
	}
}

func newStatusCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show queue counts and watched folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := f.newOneShotApp()
			if err != nil {
				return err
			}
			report, err := app.Services().Settings.Status(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("mode: %s\tnetwork: %s\n", report.Mode, report.NetworkType)
			fmt.Println("queue:")
			for _, status := range []models.SyncStatus{
				models.StatusPending,
				models.StatusInProgress,
				models.StatusCompleted,
				models.StatusFailed,
				models.StatusCancelled,
			} {
				fmt.Printf("  %-12s %d\n", status, report.Counts[status])
			}
			fmt.Printf("folders: %d\n", len(report.Folders))
			for _, folder := range report.Folders {
				fmt.Printf("  %s\n", folder.Path)
			}
			return nil
		},
	}
}
