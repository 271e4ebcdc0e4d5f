package hudsync

import (
	"fmt"
	"log/slog"
	"os"

	"hudmirror/cmd/hudmirror/common"
	"hudmirror/pkg/config"
	"hudmirror/pkg/download"
	"hudmirror/pkg/driver/httpclient"
	"hudmirror/pkg/driver/httpclient/native"
	"hudmirror/pkg/github"
	"hudmirror/pkg/hud"
	"hudmirror/pkg/logging"
	"hudmirror/pkg/mirror"

	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	var only []string
	var progress bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Check every HUD in the database and download new versions",
		Long: `Check every HUD in the database and download new versions.

GitHub hosted HUDs are downloaded only when the latest commit is newer than
the LastUpdate recorded in the database. Other HUDs are always downloaded,
hashed and kept only when the hash named file differs from the recorded URI.

The database is never modified; regenerate it with the reported timestamps.`,
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := common.LoadConfig(c)
			if err != nil {
				return err
			}
			if c.Flags().Changed("progress") {
				cfg.Download.Progress = progress
			}
			return run(c, cfg, only)
		},
	}

	common.AddDatabaseFlag(cmd)
	common.AddOutDirFlag(cmd)
	cmd.Flags().StringSliceVar(&only, "only", nil, "Process only the named HUDs (InstallDir)")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show download progress on stderr")
	return cmd
}

func run(c *cobra.Command, cfg *config.Config, only []string) error {
	ctx := logging.WithLogger(c.Context(), slog.Default())

	base := httpclient.WithLogging(native.New(cfg.HTTP.Timeout.Duration))
	apiHTTP := httpclient.WithUserAgent(base, cfg.HTTP.APIUserAgent)
	downloadHTTP := httpclient.WithUserAgent(base, cfg.HTTP.DownloadUserAgent)

	downloader := &download.HTTPDownloader{HTTP: downloadHTTP}
	if cfg.Download.Progress {
		downloader.Progress = c.ErrOrStderr()
	}

	m, err := mirror.New(mirror.Options{
		Database:   cfg.Database,
		OutDir:     cfg.OutDir,
		Commits:    github.NewClient(apiHTTP, github.WithBaseURL(cfg.GitHub.APIURL), github.WithToken(cfg.GitHub.Token)),
		Downloader: downloader,
		Sink:       logging.NewWriterSink(c.OutOrStdout()),
		Only:       only,
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	warnUnknown(m.Entries(), only)

	slog.Info("starting mirror run", "database", cfg.Database, "outdir", cfg.OutDir, "huds", len(m.Entries()))
	_, err = m.Run(ctx)
	return err
}

func warnUnknown(entries []hud.Entry, only []string) {
	known := make(map[string]bool, len(entries))
	for _, e := range entries {
		known[e.Name] = true
	}
	for _, name := range only {
		if !known[name] {
			slog.Warn("hud not found in database", "hud", name)
		}
	}
}
