package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nguyentantai21042004/video-digest/internal/analyzer"
	"github.com/nguyentantai21042004/video-digest/internal/config"
	"github.com/nguyentantai21042004/video-digest/internal/downloader"
	"github.com/nguyentantai21042004/video-digest/internal/frames"
	"github.com/nguyentantai21042004/video-digest/internal/logger"
	"github.com/nguyentantai21042004/video-digest/internal/processor"
	"github.com/nguyentantai21042004/video-digest/internal/transcriber"
	"github.com/nguyentantai21042004/video-digest/internal/watcher"
	"github.com/nguyentantai21042004/video-digest/pkg/executor"
)

const usage = `Usage: digest <command> [options]

Commands:
  process <url-or-file>   download/copy the video and write the transcript
  analyze                 analyze the transcript and assemble the digest
  run <url-or-file>       process then analyze
  watch                   digest every video dropped into the inbox

Options:
  -o dir      output directory (default "conteudo_video")
  -c file     config file (default "config.yaml")
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	command := os.Args[1]
	flags := flag.NewFlagSet(command, flag.ExitOnError)
	outputDir := flags.String("o", "", "output directory")
	configPath := flags.String("c", "config.yaml", "config file")

	// Subcommand flags follow the positional source argument
	var source string
	args := os.Args[2:]
	if (command == "process" || command == "run") && len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		source = args[0]
		args = args[1:]
	}
	if err := flags.Parse(args); err != nil {
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *outputDir != "" {
		cfg.Paths.Output = *outputDir
	}

	log := logger.New(cfg.Logging.Level)

	exec := executor.New()
	dl := downloader.New(exec, log)
	tr := transcriber.New(cfg, exec, log)
	fx := frames.New(exec, log)

	// The Gemini credential is only required (and checked) for commands
	// that reach the analysis stage.
	newAnalyzer := func() analyzer.Analyzer {
		gen, err := analyzer.NewGemini(cfg.GeminiKeys, cfg.Gemini.Model, cfg.GeminiTimeout(), log)
		if err != nil {
			log.Error(ctx, "%v", err)
			os.Exit(1)
		}
		return analyzer.New(gen, log)
	}

	switch command {
	case "process":
		if source == "" {
			fmt.Fprintln(os.Stderr, "process: missing video URL or file")
			os.Exit(2)
		}
		p := processor.New(cfg, dl, tr, nil, fx, log)
		if err := p.Process(ctx, source, cfg.Paths.Output); err != nil {
			log.Error(ctx, "Processing failed: %v", err)
			os.Exit(1)
		}

	case "analyze":
		p := processor.New(cfg, dl, tr, newAnalyzer(), fx, log)
		if err := p.Analyze(ctx, cfg.Paths.Output); err != nil {
			log.Error(ctx, "Analysis failed: %v", err)
			os.Exit(1)
		}

	case "run":
		if source == "" {
			fmt.Fprintln(os.Stderr, "run: missing video URL or file")
			os.Exit(2)
		}
		p := processor.New(cfg, dl, tr, newAnalyzer(), fx, log)
		if err := p.Run(ctx, source, cfg.Paths.Output); err != nil {
			log.Error(ctx, "Pipeline failed: %v", err)
			os.Exit(1)
		}

	case "watch":
		p := processor.New(cfg, dl, tr, newAnalyzer(), fx, log)
		if err := runWatch(ctx, cfg, p, log); err != nil && err != context.Canceled {
			log.Error(ctx, "Watcher failed: %v", err)
			os.Exit(1)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		os.Exit(2)
	}
}

// runWatch digests every video dropped into the inbox, one directory per
// video next to the configured output path.
func runWatch(ctx context.Context, cfg *config.Config, p processor.Processor, log logger.Logger) error {
	if err := os.MkdirAll(cfg.Paths.Inbox, 0755); err != nil {
		return fmt.Errorf("create inbox %s: %w", cfg.Paths.Inbox, err)
	}

	handler := func(ctx context.Context, videoPath string) error {
		name := filepath.Base(videoPath)
		outDir := cfg.Paths.Output + "_" + name[:len(name)-len(filepath.Ext(name))]
		return p.Run(ctx, videoPath, outDir)
	}

	w, err := watcher.New(cfg.Paths.Inbox, handler, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Video digest pipeline is ready")
	log.Info(ctx, "Inbox: %s", cfg.Paths.Inbox)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	return w.Start(ctx)
}
