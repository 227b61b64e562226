// Package main is the entry point for dungeonprobe, which surveys a
// constraint preset and shows the reachable grid.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeonprobe/internal/presets"
	"github.com/samdwyer/dungeonprobe/internal/probe"
	"github.com/samdwyer/dungeonprobe/internal/telemetry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := probe.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Probe error: %v", err)
	}
}

func run(ctx context.Context, cfg probe.Config) error {
	registry, err := presets.LoadRegistry()
	if err != nil {
		return err
	}
	preset, err := registry.Find(cfg.Preset)
	if err != nil {
		return err
	}

	c := preset.Constraints()
	cfg.Apply(c)

	layout := probe.Survey(ctx, telemetry.Tracer("probe"), c)
	log.Printf("Surveyed preset %q (run %s): %d rooms, %d ids allocated, keys<=%d switches<=%d, accepted=%v",
		preset.ID, layout.RunID, layout.Len(), c.Allocated(), c.MaxKeys(), c.MaxSwitches(), layout.Accepted)

	if cfg.Headless {
		return nil
	}
	return view(layout)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_DUNGEONPROBE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DUNGEONPROBE_DATASET")
	if dataset == "" {
		dataset = "dungeonprobe"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
