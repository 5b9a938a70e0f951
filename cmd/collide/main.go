package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/zeusync/collide/internal/core/observability/log"
	"github.com/zeusync/collide/internal/debugview"
	"github.com/zeusync/collide/internal/injector"
	"github.com/zeusync/collide/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "", "scene file (.yaml, .yml or .json)")
	workers := flag.Int("workers", runtime.NumCPU(), "overlap batch workers")
	logLevel := flag.String("log-level", "info", "debug, info, warn, error or fatal")
	debugAddr := flag.String("debug-addr", "", "serve shape outlines on this address until interrupted")
	printJSON := flag.Bool("json", false, "print results as JSON to stdout")
	flag.Parse()

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := log.New(level)
	defer func() { _ = logger.Sync() }()

	if *scenePath == "" {
		logger.Fatal("Missing -scene")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, logger, *scenePath, *workers, *debugAddr, *printJSON); err != nil {
		logger.Error("Run failed", log.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, path string, workers int, debugAddr string, printJSON bool) error {
	cfg, err := scene.LoadFile(path)
	if err != nil {
		return err
	}
	s, err := cfg.Build(logger)
	if err != nil {
		return err
	}
	logger.Info("Scene loaded",
		log.String("scene", s.Name),
		log.Int("bodies", len(s.Bodies)),
		log.Int("queries", len(s.Queries)),
	)

	results, err := injector.InitializeRunner(workers).Run(ctx, s)
	if err != nil {
		return err
	}
	for _, r := range results {
		logger.Info("Query result",
			log.String("query", r.Query),
			log.String("type", r.Type),
			log.Bool("hit", r.Hit),
			log.String("target", r.Target),
			log.Any("result", r),
		)
	}
	if printJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err = enc.Encode(results); err != nil {
			return err
		}
	}

	if debugAddr == "" {
		return nil
	}
	view := injector.InitializeDebugView(debugview.DefaultConfig())
	view.Publish(debugview.NewFrame(s.Name, s.Bounds(), s.Outlines()))
	return view.ListenAndServe(ctx, debugAddr)
}
