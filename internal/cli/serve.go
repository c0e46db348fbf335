package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ironsheep/colorpick/internal/capture"
	"github.com/ironsheep/colorpick/internal/config"
	"github.com/ironsheep/colorpick/internal/control"
	"github.com/ironsheep/colorpick/internal/server"
)

func newServeCmd(flags *globalFlags, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON-RPC stdio bridge (default)",
		Long: `Reads JSON-RPC 2.0 requests from stdin, one per line, and writes responses
and overlay/capture notifications to stdout.

Interrupt (Ctrl+C) while a capture session is open aborts the session;
interrupt while idle shuts the bridge down.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags, info)
		},
	}
}

func runServe(cmd *cobra.Command, flags *globalFlags, info BuildInfo) error {
	a, err := openApp(cmd, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithCancel(commandContext(cmd))

	emitter := server.NewEmitter(cmd.OutOrStdout(), a.log)
	surface := capture.New(capture.Options{
		Grabber: newGrabber(a.cfg.Capture),
		Overlay: emitter,
		Magnifier: capture.MagnifierOptions{
			Size: a.cfg.Magnifier.Size,
			Zoom: a.cfg.Magnifier.Zoom,
		},
		EventBuffer: a.cfg.Capture.EventBuffer,
		Logger:      a.log,
	})
	ctrl := a.controller(ctx, control.Options{Surface: surface, Notifier: emitter})

	var wg sync.WaitGroup
	defer wg.Wait()
	// Runs before wg.Wait so the background loops see the cancellation.
	defer cancel()

	wg.Go(func() { surface.Run(ctx) })
	wg.Go(func() {
		if err := ctrl.Pump(ctx); err != nil && ctx.Err() == nil {
			a.log.Warn("event pump stopped", "error", err)
		}
	})
	wg.Go(func() { handleInterrupts(ctx, ctrl, cancel, a) })

	srv := server.New(server.Options{
		Controller: ctrl,
		Capture:    surface,
		Emitter:    emitter,
		Logger:     a.log,
		Version:    info.Version,
	})
	a.log.Info("colorpick bridge started", "version", info.Version, "source", a.cfg.Capture.Source)

	// A read on stdin cannot be interrupted; stop waiting for it on shutdown.
	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx, cmd.InOrStdin()) }()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return nil
	}
}

// handleInterrupts aborts an open capture session on SIGINT, or shuts down
// when idle. SIGTERM always shuts down.
func handleInterrupts(ctx context.Context, ctrl *control.Controller, shutdown context.CancelFunc, a *app) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-sigs:
			if sig == os.Interrupt && ctrl.Picking() {
				a.log.Info("interrupt: aborting capture session")
				ctrl.Abort()
				continue
			}
			a.log.Info("shutting down", "signal", sig.String())
			shutdown()
			return
		}
	}
}

func newGrabber(cfg config.CaptureConfig) capture.Grabber {
	if cfg.Source == config.SourceFile {
		return capture.FileGrabber{Path: cfg.File, Cache: capture.NewImageCache()}
	}
	return capture.ScreenGrabber{Display: cfg.Display}
}
