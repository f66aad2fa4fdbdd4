package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	bqhttp "github.com/fwojciec/bookqa/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return c.serve(ctx, deps)
}

func (c *ServeCmd) serve(ctx context.Context, deps *Dependencies) error {
	handler := bqhttp.NewHandler(deps.Answerer,
		bqhttp.WithRateLimit(c.Rate, c.Burst),
		bqhttp.WithLogger(deps.Logger),
	)

	deps.Logger.Info("serving chat endpoint", "addr", c.Addr, "rate", c.Rate, "burst", c.Burst)
	return bqhttp.NewServer(c.Addr, handler).ListenAndServe(ctx)
}
