package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/ironsheep/colormap-tools-mcp/internal/colormap"
	"github.com/ironsheep/colormap-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("cmap-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		case "preview":
			if err := runPreview(os.Args[2:], os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "preview: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	// zap writes to stderr; stdout is for MCP protocol
	var l *zap.Logger
	var err error
	if os.Getenv("CMAP_MCP_LOG_LEVEL") == "debug" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer l.Sync() //nolint:errcheck

	l.Debug("starting", zap.String("version", Version), zap.String("built", BuildTime), zap.String("commit", GitCommit))

	srv := server.NewWithConfig(server.Config{
		Logger:      l,
		PaletteSize: paletteSize(l),
	})
	if err := srv.Run(); err != nil {
		l.Fatal("server error", zap.Error(err))
	}
}

// paletteSize reads CMAP_MCP_PALETTE_SIZE, falling back to the default.
func paletteSize(l *zap.Logger) int {
	v := os.Getenv("CMAP_MCP_PALETTE_SIZE")
	if v == "" {
		return colormap.DefaultSize
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		l.Warn("ignoring invalid CMAP_MCP_PALETTE_SIZE", zap.String("value", v))
		return colormap.DefaultSize
	}
	return n
}

func printHelp() {
	fmt.Println("cmap-mcp - MCP server for centering diverging colormaps")
	fmt.Println()
	fmt.Println("Usage: cmap-mcp [options]")
	fmt.Println("       cmap-mcp preview [-name RdBu] [-size 64] [-x0 0] [-clim lo,hi] [-width 64]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  CMAP_MCP_LOG_LEVEL=debug     Enable debug logging")
	fmt.Println("  CMAP_MCP_PALETTE_SIZE=64     Default size of built-in palettes")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
