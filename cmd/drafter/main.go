// Package main is the entry point for the drafter planning tool.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/drafter/internal/assembler"
	"github.com/dshills/drafter/internal/config"
	"github.com/dshills/drafter/internal/plan"
	"github.com/dshills/drafter/internal/playback"
	"github.com/dshills/drafter/internal/storage"
	"github.com/dshills/drafter/internal/variant"
	"github.com/dshills/drafter/internal/variant/luaalt"
	"github.com/dshills/drafter/internal/watch"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	draftPath    string
	configPath   string
	outPath      string
	altsPath     string
	altScript    string
	keymapPath   string
	archivePath  string
	seed         uint64
	seedSet      bool
	trace        bool
	preview      bool
	watchChanges bool
	showVersion  bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	if opts.showVersion {
		fmt.Printf("drafter %s (%s)\n", version, commit)
		return 0
	}
	if opts.draftPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no draft file given")
		flag.Usage()
		return 2
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		log.Error("load config", "error", err)
		return 1
	}
	if opts.seedSet {
		cfg.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid config", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := planOnce(ctx, log, cfg, opts); err != nil {
		log.Error("planning failed", "error", err)
		return 1
	}
	if !opts.watchChanges {
		return 0
	}

	return watchLoop(ctx, log, cfg, opts)
}

// planOnce plans the draft and runs every requested output step.
func planOnce(ctx context.Context, log *slog.Logger, cfg config.Config, opts options) error {
	draft, err := os.ReadFile(opts.draftPath)
	if err != nil {
		return fmt.Errorf("read draft: %w", err)
	}

	keymapPayload := ""
	if opts.keymapPath != "" {
		data, err := os.ReadFile(opts.keymapPath)
		if err != nil {
			return fmt.Errorf("read keymap payload: %w", err)
		}
		keymapPayload = string(data)
	}

	alts, err := loadAlternatives(log, string(draft), cfg, opts)
	if err != nil {
		return err
	}

	p, err := assembler.Build(string(draft), cfg, alts, keymapPayload)
	if err != nil {
		return err
	}
	log.Info("plan accepted",
		"id", p.Header.ID,
		"keys", p.Keys(),
		"duration_ms", p.Duration(),
		"wpm", fmt.Sprintf("[%d,%d]", cfg.WPMMin, cfg.WPMMax))

	if opts.outPath != "" {
		data, err := plan.Encode(p)
		if err != nil {
			return err
		}
		if opts.outPath == "-" {
			fmt.Println(string(data))
		} else if err := os.WriteFile(opts.outPath, data, 0o644); err != nil {
			return fmt.Errorf("write plan: %w", err)
		}
	}

	if opts.archivePath != "" {
		archive, err := storage.Open(opts.archivePath)
		if err != nil {
			return err
		}
		defer func() { _ = archive.Close() }()
		if err := archive.Save(p); err != nil {
			return err
		}
		log.Info("plan archived", "path", opts.archivePath)
	}

	if opts.trace {
		if err := playback.NewTracePlayer(os.Stdout).Play(ctx, p); err != nil {
			return err
		}
	}

	if opts.preview {
		player, err := playback.NewPreviewPlayer()
		if err != nil {
			return err
		}
		if err := player.Play(ctx, p); err != nil {
			if errors.Is(err, playback.ErrAborted) {
				log.Info("preview aborted")
				return nil
			}
			return err
		}
	}
	return nil
}

// loadAlternatives merges file and Lua suggestions and validates them
// under the configured policy.
func loadAlternatives(log *slog.Logger, draft string, cfg config.Config, opts options) (map[int][]variant.Alternative, error) {
	merged := make(map[int][]variant.Alternative)

	if opts.altsPath != "" {
		data, err := os.ReadFile(opts.altsPath)
		if err != nil {
			return nil, fmt.Errorf("read alternatives: %w", err)
		}
		parsed, err := variant.ParseAlternativesJSON(data)
		if err != nil {
			return nil, err
		}
		for idx, list := range parsed {
			merged[idx] = append(merged[idx], list...)
		}
	}

	paras := variant.SplitParagraphs(draft)
	if opts.altScript != "" {
		scripted, err := luaalt.New(opts.altScript).Alternatives(paras)
		if err != nil {
			return nil, err
		}
		for idx, list := range scripted {
			merged[idx] = append(merged[idx], list...)
		}
	}
	if len(merged) == 0 {
		return nil, nil
	}

	valid, failures := variant.ValidateAlternatives(paras, merged)
	if len(failures) > 0 {
		if cfg.OnInvalidAlternatives == config.PolicyError {
			return nil, failures[0]
		}
		for _, f := range failures {
			log.Warn("dropping suggestions", "error", f)
		}
	}
	return valid, nil
}

// watchLoop replans whenever the draft or alternatives file changes.
func watchLoop(ctx context.Context, log *slog.Logger, cfg config.Config, opts options) int {
	paths := []string{opts.draftPath}
	if opts.altsPath != "" {
		paths = append(paths, opts.altsPath)
	}
	w, err := watch.New(paths...)
	if err != nil {
		log.Error("start watcher", "error", err)
		return 1
	}
	defer func() { _ = w.Close() }()
	log.Info("watching for changes", "paths", paths)

	for {
		select {
		case <-ctx.Done():
			return 0
		case changed := <-w.Events():
			log.Info("change detected", "path", changed)
			if err := planOnce(ctx, log, cfg, opts); err != nil {
				log.Error("replanning failed", "error", err)
			}
		}
	}
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.draftPath, "draft", "", "Path to the draft text file")
	flag.StringVar(&opts.configPath, "config", "", "Path to a TOML configuration file")
	flag.StringVar(&opts.outPath, "out", "-", "Plan output path (- for stdout, empty to skip)")
	flag.StringVar(&opts.altsPath, "alternatives", "", "Path to a phrase alternatives JSON file")
	flag.StringVar(&opts.altScript, "alt-script", "", "Path to a Lua alternatives script")
	flag.StringVar(&opts.keymapPath, "keymap", "", "Path to an XKB keymap payload to embed")
	flag.StringVar(&opts.archivePath, "archive", "", "SQLite archive to save the plan into")
	flag.Uint64Var(&opts.seed, "seed", 0, "PRNG seed override")
	flag.BoolVar(&opts.trace, "trace", false, "Write a decoded action trace to stdout")
	flag.BoolVar(&opts.preview, "preview", false, "Rehearse the plan in the terminal")
	flag.BoolVar(&opts.watchChanges, "watch", false, "Replan when the draft changes")
	flag.BoolVar(&opts.showVersion, "version", false, "Print version and exit")

	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			opts.seedSet = true
		}
	})
	if opts.draftPath == "" && flag.NArg() > 0 {
		opts.draftPath = flag.Arg(0)
	}
	return opts
}
