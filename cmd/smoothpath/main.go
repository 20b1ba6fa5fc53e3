// Command smoothpath densifies waypoint lists with a centripetal
// Catmull-Rom spline and prints the result as "<x>, <y>" lines.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
