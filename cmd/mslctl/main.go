// Command mslctl is the operator tool for the student licensing service.
//
// Usage:
//
//	mslctl ingest students roster.txt --dry-run
//	mslctl migrate up
//	mslctl account promote --email=user@mohawkcollege.ca
//
// Configuration is read like the server's: CONFIG_PATH or ./config.yaml,
// overridden by environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aidenliw/msl-mohawk/internal/app"
	"github.com/aidenliw/msl-mohawk/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(app.BuildVersion()).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
