package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/lexandro/codemap-mcp/config"
	"github.com/lexandro/codemap-mcp/scheduler"
	"github.com/lexandro/codemap-mcp/search"
	"github.com/lexandro/codemap-mcp/server"
	"github.com/lexandro/codemap-mcp/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// excludePatterns is a repeatable CLI flag for custom ignore patterns.
type excludePatterns []string

func (e *excludePatterns) String() string { return strings.Join(*e, ", ") }
func (e *excludePatterns) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	var rootDir string
	var outputPath string
	var extensions string
	var debounce time.Duration
	var maxFileSizeBytes int64
	var logLevel string
	var logFile string
	var watchMode bool
	var serveMode bool
	var excludes excludePatterns

	flag.StringVar(&rootDir, "root", "", "Project root directory (default: current working directory)")
	flag.StringVar(&outputPath, "output", "", "Index document path (default: <root>/"+config.DefaultOutputFile+")")
	flag.StringVar(&extensions, "extensions", "", "Comma-separated extension whitelist (default: built-in list)")
	flag.Var(&excludes, "exclude", "Extra ignore pattern (repeatable)")
	flag.DurationVar(&debounce, "debounce", config.DefaultDebounce, "Quiet period before a rebuild in watch mode")
	flag.Int64Var(&maxFileSizeBytes, "max-file-size", config.DefaultMaxFileSizeBytes, "Maximum file size in bytes")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (default: stderr; serve mode defaults to <root>/codemap-mcp.log)")
	flag.BoolVar(&watchMode, "watch", false, "Keep running and rebuild the index on file changes")
	flag.BoolVar(&serveMode, "serve", false, "Run as an MCP server on stdio (implies watching)")
	flag.Parse()

	if rootDir == "" {
		var err error
		rootDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
	}
	rootDir, _ = filepath.Abs(rootDir)

	// In serve mode stdout carries the MCP stdio transport, so logs default
	// to a file in the project root instead.
	if serveMode && logFile == "" {
		logFile = filepath.Join(rootDir, "codemap-mcp.log")
	}
	logger := setupLogger(logLevel, logFile)

	cfg := &config.Config{
		RootDir:          rootDir,
		OutputPath:       outputPath,
		IgnorePatterns:   excludes,
		Debounce:         debounce,
		MaxFileSizeBytes: maxFileSizeBytes,
	}
	if extensions != "" {
		cfg.Extensions = strings.Split(extensions, ",")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch {
	case serveMode:
		err = runServe(ctx, cfg, logger)
	case watchMode:
		logger.Info("starting watch mode", "root", rootDir, "debounce", debounce)
		err = scheduler.Watch(ctx, cfg, logger)
	default:
		err = runOnce(ctx, cfg, logger)
	}
	if err != nil {
		logger.Error("codemap-mcp failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runOnce builds the index a single time and reports the result on stdout.
func runOnce(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	start := time.Now()
	doc, err := scheduler.RunOnce(ctx, cfg, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Indexed %d files in %s -> %s\n",
		doc.TotalFiles, time.Since(start).Round(time.Millisecond), cfg.OutputPath)
	return nil
}

// runServe runs the MCP server on stdio with a live, watched index behind it.
func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	startTime := time.Now()

	contentIndex, err := search.NewIndex()
	if err != nil {
		return err
	}
	defer contentIndex.Close()

	sched, fileWatcher, err := scheduler.NewFromConfig(cfg, logger, contentIndex)
	if err != nil {
		return err
	}
	defer fileWatcher.Close()

	logger.Info("starting codemap-mcp",
		"root", cfg.RootDir,
		"output", cfg.OutputPath,
		"debounce", cfg.Debounce,
	)

	go fileWatcher.Start()
	schedDone := make(chan error, 1)
	go func() { schedDone <- sched.Run(ctx) }()

	treeHandler := &tools.TreeHandler{Docs: sched, Logger: logger}
	fileHandler := &tools.FileHandler{Docs: sched, Logger: logger}
	filesHandler := &tools.FilesHandler{Docs: sched, Logger: logger}
	searchHandler := &tools.SearchHandler{Content: contentIndex, Logger: logger}
	statusHandler := &tools.StatusHandler{
		Docs:      sched,
		Content:   contentIndex,
		StartTime: startTime,
		RootDir:   cfg.RootDir,
		Logger:    logger,
	}
	reindexHandler := &tools.ReindexHandler{
		DoReindex: sched.Rebuild,
		Logger:    logger,
	}

	mcpServer := server.Setup(treeHandler, fileHandler, filesHandler, searchHandler, statusHandler, reindexHandler)

	logger.Info("MCP server starting on stdio")
	if err := mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return err
	}
	<-schedDone
	return nil
}

// setupLogger creates an slog.Logger writing to stderr or a file.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			writer = os.Stderr
		} else {
			writer = f
		}
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
