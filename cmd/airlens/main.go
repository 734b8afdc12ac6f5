// Package main provides the AirLens terminal client. It resolves the
// current position, fetches the air quality report from the API, and
// renders it to the terminal.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/airlens/airlens/internal/geolocate"
	"github.com/airlens/airlens/internal/lookup"
	"github.com/airlens/airlens/internal/view"
	"github.com/airlens/airlens/internal/view/term"
)

func main() {
	_ = godotenv.Load()

	apiURL := flag.String("api", envOr("AIRLENS_API_URL", "http://localhost:8080"), "base URL of the AirLens API")
	color := flag.Bool("color", true, "enable ANSI colors")
	highAccuracy := flag.Bool("high-accuracy", false, "request the most precise position available")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()

	console := term.NewConsole(term.ConsoleConfig{
		Writer: os.Stdout,
		Color:  *color,
	})

	locator := geolocate.NewIPLocator(geolocate.IPLocatorConfig{
		Options: geolocate.Options{HighAccuracy: *highAccuracy},
		Logger:  log,
	})

	renderer := view.NewRenderer(view.RendererConfig{
		Target: console,
		Charts: console,
		Logger: log,
	})
	defer renderer.Close()

	orchestrator := lookup.New(lookup.Config{
		Locator:  locator,
		Client:   lookup.NewHTTPClient(lookup.HTTPClientConfig{BaseURL: strings.TrimRight(*apiURL, "/"), Logger: log}),
		Sections: view.NewSections(console),
		Renderer: renderer,
		Logger:   log,
	})

	ctx := context.Background()
	_ = orchestrator.RequestLocation(ctx)

	fmt.Println("\ncommands: [r]efresh, [l]ocate again, [q]uit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "r", "refresh":
			_ = orchestrator.Refresh(ctx)
		case "l", "locate":
			_ = orchestrator.Retry(ctx)
		case "q", "quit", "exit":
			return
		case "":
		default:
			fmt.Println("commands: [r]efresh, [l]ocate again, [q]uit")
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
