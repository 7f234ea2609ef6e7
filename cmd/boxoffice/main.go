package main

import (
	"context"
	"log/slog"

	"boxoffice/cmd/boxoffice/commands"
	"boxoffice/lib/serviceutil"
	"boxoffice/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(false)
	tel, err := telemetry.SetupFromEnv(ctx, "boxoffice")
	if err != nil {
		slog.Warn("failed to setup telemetry", "err", err)
	}
	defer func() {
		err := tel.Shutdown(context.Background())
		if err != nil {
			slog.Warn("failed to shutdown telemetry", "err", err)
		}
	}()

	commands.ExecuteContext(ctx)
}
