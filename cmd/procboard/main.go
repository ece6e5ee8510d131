package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/procboard/procboard/internal/collector"
	"github.com/procboard/procboard/internal/config"
	"github.com/procboard/procboard/internal/server"
)

var (
	version    = "dev"
	commitHash = "unknown"
	buildDate  = "unknown"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "procboard",
	Short: "procboard - host status reporting daemon",
	Long: `procboard serves a live HTML status page of the local host (uptime, CPU,
memory, processes, disks, input devices, network adapters) together with
telemetry fetched over SSH from a paired device.

Run without a subcommand to start the daemon (equivalent to 'serve').`,
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP status daemon",
	RunE:  runServe,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("procboard %s (commit: %s, built: %s)\n", version, commitHash, buildDate)
	},
}

var collectOutput string

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect one local status report and print it as JSON",
	RunE:  runCollect,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/procboard.yaml)")
	rootCmd.PersistentFlags().String("listen", "", "HTTP listen address (default 127.0.0.1:8000)")
	rootCmd.PersistentFlags().String("proc-root", "", "procfs root to read (default /proc)")
	rootCmd.PersistentFlags().String("remote-host", "", "paired device to query over SSH (empty = disabled)")
	rootCmd.PersistentFlags().String("remote-user", "", "SSH user for the paired device (default root)")

	collectCmd.Flags().StringVarP(&collectOutput, "output", "o", "", "write JSON output to file instead of stdout")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(collectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// CLI flag overrides.
	if v, _ := cmd.Flags().GetString("listen"); v != "" {
		cfg.Listen = v
	}
	if v, _ := cmd.Flags().GetString("proc-root"); v != "" {
		cfg.ProcRoot = v
	}
	if v, _ := cmd.Flags().GetString("remote-host"); v != "" {
		cfg.Remote.Host = v
	}
	if v, _ := cmd.Flags().GetString("remote-user"); v != "" {
		cfg.Remote.User = v
	}

	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Shut down on SIGINT / SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg)
}

func runCollect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	rep := collector.New(cfg.ProcRoot).Collect()
	for _, section := range rep.Errors {
		fmt.Fprintf(os.Stderr, "warning: %s\n", section)
	}

	w := os.Stdout
	if collectOutput != "" {
		f, err := os.Create(collectOutput)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if collectOutput != "" {
		fmt.Fprintf(os.Stderr, "report written to %s\n", collectOutput)
	}
	return nil
}
