package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/qdrant-sweep/internal/domain/ports"
	"github.com/ersonp/qdrant-sweep/internal/infrastructure/config"
	"github.com/ersonp/qdrant-sweep/internal/infrastructure/vectordb/qdrant"
)

// withAdmin loads the configuration, connects to Qdrant and calls the
// provided function. It handles cleanup automatically. On total connection
// failure it reports every attempt plus the resolved configuration (never
// the credential value) before returning the error.
func withAdmin(ctx context.Context, flags sweepFlags, fn func(ports.VectorAdmin) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = cfg.Override(flags.url, flags.password)

	fmt.Printf("Connecting to %s\n", cfg.Addr)

	admin, err := qdrant.Connect(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not connect to Qdrant: %v\n", err)
		fmt.Fprintf(os.Stderr, "current configuration:\n")
		fmt.Fprintf(os.Stderr, "  address: %s\n", cfg.Addr)
		fmt.Fprintf(os.Stderr, "  credential set: %v\n", cfg.HasCredential())
		return fmt.Errorf("connecting to qdrant at %s", cfg.Addr)
	}
	defer admin.Close()

	fmt.Printf("Connected to Qdrant at %s\n", admin.Addr())

	return fn(admin)
}
