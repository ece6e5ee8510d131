package server

import (
	"context"
	"fmt"
	"log"

	kratoshttp "github.com/go-kratos/kratos/v2/transport/http"

	"github.com/procboard/procboard/internal/collector"
	"github.com/procboard/procboard/internal/config"
	"github.com/procboard/procboard/internal/remote"
)

// Run starts the HTTP server and blocks until the context is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	var runner remote.Runner
	if cfg.Remote.Host != "" {
		r, err := remote.NewSSHRunner(remote.SSHConfig{
			Host:     cfg.Remote.Host,
			Port:     cfg.Remote.Port,
			User:     cfg.Remote.User,
			KeyFile:  cfg.Remote.KeyFile,
			Password: cfg.Remote.Password,
			Timeout:  cfg.Remote.Timeout,
		})
		if err != nil {
			return fmt.Errorf("remote runner: %w", err)
		}
		runner = r
		log.Printf("Remote device: %s@%s:%d", cfg.Remote.User, cfg.Remote.Host, cfg.Remote.Port)
	} else {
		log.Println("No remote host configured; remote metrics will render as unreachable")
	}

	handler := NewHandler(collector.New(cfg.ProcRoot), runner, cfg.RequestTimeout)

	// Every path serves the report, so the handler is mounted at the root
	// prefix rather than on per-route bindings.
	httpSrv := kratoshttp.NewServer(
		kratoshttp.Address(cfg.Listen),
		kratoshttp.Timeout(cfg.RequestTimeout),
	)
	httpSrv.HandlePrefix("/", handler)

	// Graceful shutdown when the caller cancels the context.
	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		_ = httpSrv.Stop(context.Background())
	}()

	log.Printf("procboard listening on %s (proc root: %s)", cfg.Listen, cfg.ProcRoot)
	return httpSrv.Start(ctx)
}
