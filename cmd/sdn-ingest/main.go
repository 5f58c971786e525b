// Command sdn-ingest parses a local SDN Advanced XML export, emits one
// flattened record per party, and can optionally screen a name against the
// resulting corpus. It never fetches sdn_advanced.OFACSourceURL itself —
// that download step is explicitly out of scope (spec.md §1).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"go.uber.org/zap"

	sdnadvanced "github.com/ofac-dev/sdn-advanced"
	"github.com/ofac-dev/sdn-advanced/matcher"
)

func main() {
	inputPath := flag.String("input", "", "path to an SDN Advanced XML file (required)")
	outputPath := flag.String("output", "", "path to write output; defaults to stdout")
	configPath := flag.String("config", "", "optional YAML/JSON config file")
	query := flag.String("query", "", "if set, screen this name against the parsed corpus instead of printing records")
	threshold := flag.Int("threshold", -1, "override the configured match threshold")
	limit := flag.Int("limit", -1, "override the configured match limit")
	workers := flag.Int("workers", -1, "override the configured party-emitter concurrency")
	format := flag.String("format", "", "override the configured output format (json or jsonl)")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if *inputPath == "" {
		logger.Fatal("missing required flag", zap.String("flag", "-input"))
	}

	cfg, err := loadCLIConfig(*configPath)
	if err != nil {
		logger.Fatal("loading config", zap.Error(err))
	}
	if *threshold >= 0 {
		cfg.Threshold = *threshold
	}
	if *limit >= 0 {
		cfg.Limit = *limit
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if *format != "" {
		cfg.Format = *format
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		logger.Fatal("reading input file", zap.String("path", *inputPath), zap.Error(err))
	}
	logger.Info("read SDN Advanced XML", zap.String("path", *inputPath), zap.Int("bytes", len(data)))

	result, err := sdnadvanced.Parse(context.Background(), data, &sdnadvanced.Config{Concurrency: cfg.Workers})
	if err != nil {
		logger.Fatal("parsing SDN Advanced XML", zap.Error(err))
	}
	logger.Info("parsed SDN Advanced XML",
		zap.String("publication_date", result.PublicationDate),
		zap.Int("parties", len(result.Parties)),
		zap.Int("warnings", len(result.Warnings)),
	)
	for _, w := range result.Warnings {
		logger.Warn(string(w.Kind), zap.String("party_id", w.PartyID), zap.String("detail", w.Detail))
	}

	out := os.Stdout
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			logger.Fatal("creating output file", zap.String("path", *outputPath), zap.Error(err))
		}
		defer f.Close()
		out = f
	}

	if *query != "" {
		hits, err := matcher.Screen(*query, cfg.Threshold, cfg.Limit, result.Parties)
		if err != nil {
			logger.Fatal("screening query", zap.Error(err))
		}
		logger.Info("screened query", zap.String("query", *query), zap.Int("hits", len(hits)))
		if err := json.NewEncoder(out).Encode(hits); err != nil {
			logger.Fatal("encoding hits", zap.Error(err))
		}
		return
	}

	if err := writeParties(out, result.Parties, cfg.Format); err != nil {
		logger.Fatal("writing output", zap.Error(err))
	}
}

func writeParties(out *os.File, parties []sdnadvanced.Party, format string) error {
	enc := json.NewEncoder(out)
	if format == "json" {
		return enc.Encode(parties)
	}
	for _, party := range parties {
		if err := enc.Encode(party); err != nil {
			return err
		}
	}
	return nil
}
