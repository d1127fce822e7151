package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/paulfryers/coronavirus-dashboard/internal/config"
	"github.com/paulfryers/coronavirus-dashboard/internal/dataset"
	"github.com/paulfryers/coronavirus-dashboard/internal/eventbus"
	"github.com/paulfryers/coronavirus-dashboard/internal/logic"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui"
	"github.com/paulfryers/coronavirus-dashboard/internal/watcher"
)

// uiEvents are the domain events the dashboard reacts to.
var uiEvents = []eventbus.EventType{
	eventbus.EventDataLoadRequested,
	eventbus.EventDataLoaded,
	eventbus.EventDataLoadFailed,
	eventbus.EventDataFileChanged,
	eventbus.EventError,
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runDashboard runs the interactive dashboard until the user quits or ctx
// is cancelled.
func runDashboard(ctx context.Context, cfg *config.Config, opts *options) error {
	logger := newLogger(cfg, opts)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bus := eventbus.New(logger)
	defer bus.Close()

	store := logic.NewMemoryDatasetStore()
	src := sourceFromConfig(cfg)
	svc := dataset.NewService(newLoader(cfg), store, bus, src,
		dataset.WithTimeout(time.Duration(cfg.Data.TimeoutSeconds)*time.Second),
		dataset.WithServiceLogger(logger),
	)
	svc.Start(ctx)
	defer svc.Stop()

	if cfg.Data.Watch {
		for _, path := range src.WatchPaths() {
			w, err := watcher.New(path, bus, watcher.WithLogger(logger))
			if err != nil {
				logger.Warn("file watching disabled", zap.String("path", path), zap.Error(err))
				continue
			}
			if err := w.Start(ctx); err != nil {
				logger.Warn("file watching disabled", zap.String("path", path), zap.Error(err))
				w.Stop()
				continue
			}
			defer w.Stop()
		}
	}

	model := ui.NewModel(bus, cfg, store, logger)
	defer model.Close()
	model.SetConfigService(configService(opts))

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UISettings.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	// Forward domain events to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, et := range uiEvents {
		unsub := bus.Subscribe(et, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				logger.Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
			}
		})
		defer unsub()
	}
	go func() {
		for {
			select {
			case e := <-eventChan:
				p.Send(ui.EventMsg{Event: e})
			case <-ctx.Done():
				return
			}
		}
	}()

	logger.Info("dashboard starting", zap.String("source", src.String()))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
