package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/config"
	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/logger"
	"github.com/dhomini-pereira/nexo-api/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "nexo-cli",
		Short: "Nexo CLI tool",
		Long:  `A command line interface for operating the Nexo API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Nexo API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Trigger the daily recurrence sweep",
		Run: func(cmd *cobra.Command, args []string) {
			runSweep()
		},
	}
	rootCmd.AddCommand(sweepCmd)

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration operations",
	}
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigrations(false)
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		Run: func(cmd *cobra.Command, args []string) {
			runMigrations(true)
		},
	})
	rootCmd.AddCommand(migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runSweep() {
	secret := os.Getenv("CRON_SECRET")
	if secret == "" {
		fmt.Println("CRON_SECRET is not set")
		os.Exit(1)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/cron/recurrences", nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Authorization", "Bearer "+secret)

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Sweep FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sweep finished\n")
	fmt.Printf("Due: %v  Processed: %v  Failed: %v\n", result["due"], result["processed"], result["failed"])
}

func runMigrations(down bool) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console"})

	if down {
		err = postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath, log)
	} else {
		err = postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log)
	}
	if err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migration complete")
}
