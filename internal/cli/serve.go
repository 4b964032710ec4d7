package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nakamura-oss/cubescan/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP scan-matching service",
	Long: `Start the web server exposing POST /api/match and GET /api/health,
backed by a single pre-built scoring table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")
		tablePath, _ := cmd.Flags().GetString("table")
		if tablePath == "" {
			return fmt.Errorf("--table is required")
		}

		table, err := loadScoreTable(tablePath)
		if err != nil {
			return fmt.Errorf("load score table: %w", err)
		}

		addr := host + ":" + port
		fmt.Printf("Starting web server at http://%s\n", addr)

		server := web.NewServer(table)
		if err := server.Start(addr); err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
	serveCmd.Flags().StringP("table", "t", "", "path to a scoring table built by 'table build'")
	rootCmd.AddCommand(serveCmd)
}
