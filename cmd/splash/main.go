// CLAUDE:SUMMARY CLI entry point for splash — resolves a UI's splash screen from a YAML registry, or serves MCP tools on stdio.
// Command splash resolves the splash screen configured for a UI.
//
// Usage:
//
//	splash -config splash.yaml -ui main                  # rendered HTML on stdout
//	splash -config splash.yaml -ui main -format markdown # terminal preview
//	splash -config splash.yaml -ui main -format json     # contents + display parameters
//	splash -config splash.yaml -ui main -probe           # intrinsic size of an image splash
//	splash -config splash.yaml -mcp                      # serve splash tools over stdio
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/splashscreen/kit"
	"github.com/hazyhaar/splashscreen/splash"
)

func main() {
	configPath := flag.String("config", "", "path to splash.yaml config file")
	uiName := flag.String("ui", "", "UI to resolve")
	format := flag.String("format", "html", "output format: html, markdown, json")
	probe := flag.Bool("probe", false, "report the pixel size of an image splash and exit")
	serveMCP := flag.Bool("mcp", false, "serve splash tools over MCP stdio")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	switch *logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *configPath == "" || (*uiName == "" && !*serveMCP) {
		fmt.Fprintln(os.Stderr, "usage: splash -config <file> (-ui <name> [-format html|markdown|json] [-probe] | -mcp)")
		os.Exit(1)
	}

	if err := run(ctx, logger, os.Stdout, *configPath, *uiName, *format, *probe, *serveMCP); err != nil {
		logger.Error("splash: fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, out io.Writer, configPath, uiName, format string, probe, serveMCP bool) error {
	cfg, err := splash.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg.Logger = logger

	reg, err := cfg.Registry(os.DirFS(cfg.Resources))
	if err != nil {
		return fmt.Errorf("registry: %w", err)
	}
	res := splash.New(*cfg, reg)

	if serveMCP {
		srv := mcp.NewServer(&mcp.Implementation{Name: "splash", Version: "1.0.0"}, nil)
		res.RegisterMCP(srv)
		logger.Info("splash: serving MCP on stdio", "uis", len(reg.Names()))
		err := srv.Run(ctx, &mcp.StdioTransport{})
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("mcp: %w", err)
		}
		return nil
	}

	ctx = kit.WithTransport(ctx, "cli")

	if probe {
		return runProbe(res, reg, out, uiName)
	}

	sc, ok, err := res.Resolve(ctx, uiName)
	if err != nil {
		return err
	}
	if !ok {
		logger.Info("splash: no splash screen configured", "ui", uiName)
		return nil
	}

	switch format {
	case "html":
		s, err := res.Renderer().HTML(sc.Contents)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	case "markdown":
		s, err := res.Renderer().Markdown(sc.Contents)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	case "json":
		view, err := res.Renderer().View(sc)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func runProbe(res *splash.Resolver, reg *splash.Registry, out io.Writer, uiName string) error {
	env, _, found := reg.Lookup(uiName)
	if !found {
		return fmt.Errorf("%w: %s", splash.ErrUnknownUI, uiName)
	}
	if env.Directive == nil {
		return fmt.Errorf("ui %s has no splash directive", uiName)
	}
	w, h, err := res.Loader().ProbeImage(env.UI, env.Directive.Value)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"ui":     uiName,
		"file":   env.Directive.Value,
		"width":  w,
		"height": h,
		"directive": map[string]string{
			"width":  env.Directive.Width,
			"height": env.Directive.Height,
		},
	})
}
