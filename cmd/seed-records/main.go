// Command seed-records writes a generated athletes.json dataset for
// local runs and demos.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/adurand33/Performance/internal/seed"
	"github.com/adurand33/Performance/pkg/logger"
)

func main() {
	out := flag.String("out", "athletes.json", "output path for the generated dataset")
	athletes := flag.Int("athletes", 0, "number of athletes to generate (0 = all)")
	seedVal := flag.Int64("seed", 0, "random seed (0 = default, deterministic)")
	flag.Parse()

	_ = logger.Init()
	log := logger.Named("seed")
	ctx := context.Background()

	ds := seed.NewGenerator(*seedVal).Dataset(*athletes)

	raw, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		log.Error(ctx, "encoding dataset failed", logger.Error(err))
		os.Exit(1)
	}
	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		log.Error(ctx, "writing dataset failed", logger.String("path", *out), logger.Error(err))
		os.Exit(1)
	}

	total := 0
	for _, records := range ds {
		total += len(records)
	}
	log.Info(ctx, "dataset written",
		logger.String("path", *out),
		logger.Int("athletes", len(ds)),
		logger.Int("records", total),
	)
}
