package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/settings-seeder/internal/config"
	"github.com/GoPowerDNS-Admin/settings-seeder/internal/logger"
	"github.com/GoPowerDNS-Admin/settings-seeder/internal/seed"
	"github.com/GoPowerDNS-Admin/settings-seeder/internal/usersetting"
)

func init() { //nolint: gochecknoinits
	seedCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Definitions file, overrides seed.file")
	seedCmd.Flags().BoolVar(&force, "force", false, "Apply the file even if it was applied before")
	seedCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the statements instead of executing them")

	rootCmd.AddCommand(seedCmd)
}

var (
	cfg config.Config

	devMode  bool
	seedFile string
	force    bool
	dryRun   bool

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Insert the user settings of a definitions file",
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			if cfg, err = config.ReadConfig(configPath); err != nil {
				return err //nolint:wrapcheck
			}

			if devMode {
				cfg.DevMode = true
			}

			if cmd.Flags().Changed("file") {
				cfg.Seed.File = seedFile
			}

			cfg.Seed.Force = cfg.Seed.Force || force
			cfg.Seed.DryRun = cfg.Seed.DryRun || dryRun

			if err = logger.Init(cfg.Log); err != nil {
				return err //nolint:wrapcheck
			}

			if cfg.DevMode {
				if dump, err := config.DumpConfigJSON(&cfg); err == nil {
					log.Debug().Msg(dump)
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := seed.Load(cfg.Seed.File)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if cfg.Seed.DryRun {
				dialect, err := usersetting.ParseDialect(cfg.DB.GormEngine)
				if err != nil {
					return err //nolint:wrapcheck
				}

				_, err = seed.Plan(cmd.Context(), dialect, src, cmd.OutOrStdout())

				return err //nolint:wrapcheck
			}

			db, err := seed.Open(&cfg)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			seeder, err := seed.New(db)
			if err != nil {
				return err //nolint:wrapcheck
			}

			if err = seeder.Migrate(); err != nil {
				return err //nolint:wrapcheck
			}

			_, err = seeder.Run(cmd.Context(), src, cfg.Seed.Force)

			return err //nolint:wrapcheck
		},
	}
)
