package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tonlabs/react-navigation-surf/internal/surf"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var writeConfig bool
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/surf/config.yml)")
	flag.BoolVar(&writeConfig, "write-config", false, "write a starter config file and exit")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("surf demo\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	if writeConfig {
		path := configPath
		if path == "" {
			var err error
			path, err = defaultConfigPath()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		if err := writeDefaultConfig(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg cliConfig) error {
	nav, err := surf.New(demoScreens(cfg), surf.Config{
		InitialRoute: cfg.InitialRoute,
		MainWidth:    cfg.MainWidth,
	})
	if err != nil {
		return fmt.Errorf("building navigator: %w", err)
	}
	defer nav.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := tea.NewProgram(nav, tea.WithAltScreen())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := p.Run()
		return err
	})

	// Feed synthetic activity samples so the activity scene stays live even
	// while hidden in the detail pane.
	g.Go(func() error {
		ticker := time.NewTicker(cfg.SampleInterval)
		defer ticker.Stop()
		phase := 0.0
		for {
			select {
			case <-gctx.Done():
				p.Quit()
				return nil
			case <-ticker.C:
				phase += 0.3
				sample := 50 + 40*math.Sin(phase) + rand.Float64()*10
				p.Send(activitySampleMsg(sample))
			}
		}
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	if err := nav.Err(); err != nil {
		return err
	}
	return nil
}
