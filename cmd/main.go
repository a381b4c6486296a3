package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "resto-manager",
		Short: "Restaurant back-office service: menu, costs, analytics and scheduled reports",
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the resto-manager service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE:  migrateDB,
	}

	cfgFile string
	version string
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.AddCommand(versionCmd, migrateCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("can't start the service", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
