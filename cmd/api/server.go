package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// writeMargin leaves room after a generation timeout for the fallback
// response to be written.
const writeMargin = 15 * time.Second

func (app *application) serve() error {
	server := &http.Server{
		Addr:         app.Config.GetServerAddr(),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: app.Config.LLM.Timeout + writeMargin,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Sugar().Infow("starting server", "addr", server.Addr, "env", app.Config.Env)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.Logger.Sugar().Infow("shutting down server", "sessions", app.Store.Len())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.LLM.Timeout+writeMargin)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
