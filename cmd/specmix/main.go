// Command specmix mixes four images in the frequency domain.
//
// Usage:
//
//	specmix mix [flags] IMAGE1 IMAGE2 IMAGE3 IMAGE4
//	specmix inspect [--dump DIR] IMAGE
//	specmix config init [PATH]
//	specmix config show
//
// Examples:
//
//	specmix mix a.png b.png c.png d.png --components magnitude,phase,magnitude,phase
//	specmix mix a.png b.png c.png d.png --components real,imaginary,real,imaginary --crop outer --rect 10,10,20,20
//	specmix inspect --dump spectra photo.jpg
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/cwbudde/algo-specmix/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
