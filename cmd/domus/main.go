package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/domus-inc/domus/internal/interfaces/cli/cache"
	"github.com/domus-inc/domus/internal/interfaces/cli/migrate"
	"github.com/domus-inc/domus/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "domus",
		Short: "Domus - property service ticket platform",
		Long:  `Domus tracks service tickets against properties with SLA deadlines, role-scoped access and notifications.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		cache.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
