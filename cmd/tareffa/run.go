package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/fx"
)

const stopTimeout = 30 * time.Second

type lifecycle interface {
	Start(context.Context) error
	Stop(context.Context) error
	Wait() <-chan fx.ShutdownSignal
}

var stderr io.Writer = os.Stderr

// run starts app and blocks until ctx is cancelled or app asks to shut down.
func run(ctx context.Context, app lifecycle) int {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "failed to start tareffa: %v\n", err)
		return 1
	}

	code := 0
	select {
	case <-ctx.Done():
	case sig := <-app.Wait():
		code = sig.ExitCode
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(stderr, "failed to stop tareffa: %v\n", err)
		return 1
	}
	return code
}
