// Command semindex indexes JavaScript, TypeScript, Python, and Rust source
// trees into a semantic index of their definitions, and can expose that
// index to editors/agents over the Model Context Protocol.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/archlane/semindex/pkg/discovery"
	"github.com/archlane/semindex/pkg/mcplog"
	"github.com/archlane/semindex/pkg/mcpserver"
	"github.com/archlane/semindex/pkg/parser"
	"github.com/archlane/semindex/pkg/parser/queries"
	"github.com/archlane/semindex/pkg/project"
	"github.com/archlane/semindex/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "index":
		runIndex(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "version":
		fmt.Printf("semindex %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: semindex <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  index <path>   Index a file or directory and print a JSON summary")
	fmt.Println("  serve          Start the MCP server over stdio")
	fmt.Println("  version        Print version")
	fmt.Println("  help           Show this help message")
}

// runIndex implements `semindex index <path>`: indexes a single file, or
// every recognised source file under a directory, and prints a JSON
// summary of definition counts per file.
func runIndex(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: semindex index <path>")
		os.Exit(1)
	}
	target := args[0]

	cfg, err := loadConfig("semindex.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := util.NewLogger(util.LoggerConfig{
		Level:  util.LogLevel(cfg.LogLevel),
		Format: util.FormatJSON,
		Output: os.Stderr,
	})

	pm := parser.NewParserManager(logger)
	defer pm.Close()
	qm := queries.NewQueryManager(pm, logger)
	defer qm.Close()

	idx, err := project.New(pm, qm, project.Config{CacheSize: cfg.CacheSize, PoolSize: cfg.PoolSize}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create project index: %v\n", err)
		os.Exit(1)
	}

	info, err := os.Stat(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot stat %s: %v\n", target, err)
		os.Exit(1)
	}

	var paths []string
	if info.IsDir() {
		paths, err = discovery.Walk(target, cfg.Patterns)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to walk %s: %v\n", target, err)
			os.Exit(1)
		}
	} else {
		paths = []string{target}
	}

	results, errs := idx.IndexAll(paths)
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "index error: %v\n", e)
	}

	summary := make(map[string]any, len(results))
	for path, si := range results {
		summary[path] = map[string]any{
			"language":     si.Language.String(),
			"classes":      len(si.Result.Classes),
			"functions":    len(si.Result.Functions),
			"interfaces":   len(si.Result.Interfaces),
			"enums":        len(si.Result.Enums),
			"namespaces":   len(si.Result.Namespaces),
			"variables":    len(si.Result.Variables),
			"type_aliases": len(si.Result.TypeAliases),
			"imports":      len(si.Result.Imports),
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode summary: %v\n", err)
		os.Exit(1)
	}

	if len(errs) > 0 {
		os.Exit(2)
	}
}

// runServe implements `semindex serve`: starts the MCP server over stdio,
// watching the configured root so the Project Index's cache stays warm as
// files change on disk.
func runServe(args []string) {
	cfg, err := loadConfig("semindex.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout is the JSON-RPC transport once ServeStdio starts; all logging
	// must go to stderr.
	logger := util.NewLogger(util.LoggerConfig{
		Level:  util.LogLevel(cfg.LogLevel),
		Format: util.FormatJSON,
		Output: os.Stderr,
	})

	pm := parser.NewParserManager(logger)
	defer pm.Close()
	qm := queries.NewQueryManager(pm, logger)
	defer qm.Close()

	idx, err := project.New(pm, qm, project.Config{CacheSize: cfg.CacheSize, PoolSize: cfg.PoolSize}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create project index: %v\n", err)
		os.Exit(1)
	}

	watcher, err := discovery.NewWatcher(cfg.Root, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start watcher: %v\n", err)
		os.Exit(1)
	}
	defer watcher.Close()

	go func() {
		for event := range watcher.Events {
			logger.Debug("file changed, invalidating", "path", event.Path, "op", event.Op.String())
			idx.Invalidate(event.Path)
		}
	}()

	var mcpLogger *mcplog.Logger
	if cfg.MCPLogPath != "" {
		mcpLogger, err = mcplog.NewLogger(cfg.MCPLogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open mcp log: %v\n", err)
			os.Exit(1)
		}
	}

	srv := mcpserver.NewServer(idx, mcpLogger)
	defer srv.Close()

	if err := srv.ServeStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}
