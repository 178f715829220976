package app

import (
	"github.com/spf13/cobra"

	"github.com/GoPowerDNS-Admin/settings-seeder/internal/seed"
	"github.com/GoPowerDNS-Admin/settings-seeder/internal/usersetting"
)

func init() { //nolint: gochecknoinits
	planCmd.Flags().StringVarP(&planFile, "file", "f", "", "Definitions file")
	planCmd.Flags().StringVar(&planDialect, "dialect", string(usersetting.DialectSQLite), "sqlite, mysql or postgres")
	_ = planCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(planCmd)
}

var (
	planFile    string
	planDialect string

	planCmd = &cobra.Command{
		Use:   "plan",
		Short: "Print the insert statements of a definitions file without a database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dialect, err := usersetting.ParseDialect(planDialect)
			if err != nil {
				return err //nolint:wrapcheck
			}

			src, err := seed.Load(planFile)
			if err != nil {
				return err //nolint:wrapcheck
			}

			_, err = seed.Plan(cmd.Context(), dialect, src, cmd.OutOrStdout())

			return err //nolint:wrapcheck
		},
	}
)
