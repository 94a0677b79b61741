package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-specmix/imaging/gallery"
	"github.com/cwbudde/algo-specmix/imaging/mixer"
	"github.com/cwbudde/algo-specmix/imaging/mixjob"
	"github.com/cwbudde/algo-specmix/imaging/pixio"
	"github.com/cwbudde/algo-specmix/imaging/spectral"
	"github.com/cwbudde/algo-specmix/internal/config"
)

func newMixCommand(a *app) *cobra.Command {
	d := config.Default()
	cmd := &cobra.Command{
		Use:   "mix IMAGE1 IMAGE2 IMAGE3 IMAGE4",
		Short: "Reconstruct an image from weighted spectrum components",
		Example: `  specmix mix a.png b.png c.png d.png \
    --weights 0.5,0.5,0,0 --components magnitude,phase,magnitude,phase
  specmix mix a.png b.png c.png d.png --components real,imaginary,real,imaginary \
    --crop inner --rect 20,20,40,40 -o out.png`,
		Args: cobra.ExactArgs(gallery.Slots),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMix(cmd.Context(), args)
		},
	}

	f := cmd.Flags()
	f.StringSlice("weights", formatFloats(d.Mix.Weights), "per-slot weights")
	f.StringSlice("components", d.Mix.Components, "per-slot components (magnitude, phase, real, imaginary)")
	f.String("crop", d.Mix.Crop, "crop mode (none, inner, outer)")
	f.StringSlice("rect", formatFloats(d.Mix.Rect), "crop rectangle as x,y,width,height")
	f.String("resize", d.Mix.Resize, "resize method used to match image sizes (linear, cubic)")
	f.Float64("clip-min", d.Mix.ClipMin, "lower bound of output samples")
	f.Float64("clip-max", d.Mix.ClipMax, "upper bound of output samples")
	f.Duration("timeout", d.Mix.Timeout, "abort the mix after this long (0 disables)")
	f.StringP("output", "o", d.Output.Path, "output PNG path")
	f.Bool("stretch", d.Output.Stretch, "stretch output to the full 8-bit range")
	return cmd
}

func (a *app) runMix(ctx context.Context, paths []string) error {
	cfg, err := a.load()
	if err != nil {
		return err
	}
	s, err := cfg.Mix.Request()
	if err != nil {
		return err
	}

	g := gallery.New(spectral.WithResizeMethod(s.Resize))
	for slot, path := range paths {
		pixels, err := pixio.ReadFile(path)
		if err != nil {
			return err
		}
		im, err := g.Register(slot, pixels)
		if err != nil {
			return err
		}
		a.logger.Debug("registered image",
			zap.Int("slot", slot),
			zap.String("path", path),
			zap.Uint64("id", uint64(im.ID())),
			zap.Stringer("shape", im.Shape()))
	}

	if cfg.Mix.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Mix.Timeout)
		defer cancel()
	}

	batch, err := g.Normalize(ctx)
	if err != nil {
		return err
	}

	outcomes := make(chan mixjob.Outcome, 1)
	d := &mixjob.Dispatcher{
		Logger:  a.logger,
		Deliver: func(o mixjob.Outcome) { outcomes <- o },
	}
	d.Submit(ctx, mixjob.Request{
		Weights:    s.Weights,
		Components: s.Components,
		Batch:      batch,
		Mode:       s.Crop,
		Rect:       s.Rect,
		Options: []mixer.Option{
			mixer.WithClip(s.ClipMin, s.ClipMax),
			mixer.WithLogger(a.logger),
		},
	})
	d.Wait()

	out := <-outcomes
	switch {
	case out.Cancelled:
		if errors.Is(out.Err, context.DeadlineExceeded) {
			return fmt.Errorf("mix timed out after %s", cfg.Mix.Timeout)
		}
		return fmt.Errorf("mix cancelled: %w", out.Err)
	case out.Err != nil:
		return out.Err
	}

	if err := pixio.WriteFile(cfg.Output.Path, out.Result, cfg.Output.Stretch); err != nil {
		return err
	}
	a.logger.Info("mix written",
		zap.String("path", cfg.Output.Path),
		zap.Stringer("shape", out.Result.Shape),
		zap.Duration("duration", out.Duration))
	return nil
}

func formatFloats(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}
