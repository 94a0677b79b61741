package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-specmix/dsp/spectrum"
	"github.com/cwbudde/algo-specmix/imaging/grid"
	"github.com/cwbudde/algo-specmix/imaging/pixio"
	"github.com/cwbudde/algo-specmix/imaging/spectral"
)

var components = []spectral.Component{
	spectral.Magnitude, spectral.Phase, spectral.Real, spectral.Imaginary,
}

func newInspectCommand(a *app) *cobra.Command {
	var dump string
	cmd := &cobra.Command{
		Use:   "inspect IMAGE",
		Short: "Print spectrum statistics of an image",
		Long: `inspect prints the shape, spectral energy and per-component statistics of one
image. With --dump, the log-compressed display components are written as PNGs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInspect(cmd.OutOrStdout(), args[0], dump)
		},
	}
	cmd.Flags().StringVar(&dump, "dump", "", "directory for display component PNGs")
	return cmd
}

func (a *app) runInspect(w io.Writer, path, dump string) error {
	pixels, err := pixio.ReadFile(path)
	if err != nil {
		return err
	}
	var ids spectral.Allocator
	im, err := spectral.New(ids.Next(), pixels)
	if err != nil {
		return err
	}
	c := im.Components()

	p := message.NewPrinter(language.English)
	p.Fprintf(w, "image:  %s\n", path)
	p.Fprintf(w, "shape:  %s (%d samples)\n", c.Shape(), c.Shape().Len())
	p.Fprintf(w, "energy: %.4g\n\n", spectrum.Energy(c.Transform.Data))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	p.Fprintf(tw, "COMPONENT\tMIN\tMAX\tMEAN\tSTDDEV\n")
	p.Fprintf(tw, "%s\t", "pixels")
	writeStats(p, tw, c.Pixels)
	for _, comp := range components {
		raw, err := c.Raw(comp)
		if err != nil {
			return err
		}
		p.Fprintf(tw, "%s\t", comp)
		writeStats(p, tw, raw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if dump == "" {
		return nil
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	for _, comp := range components {
		disp, err := c.Display(comp)
		if err != nil {
			return err
		}
		out := filepath.Join(dump, fmt.Sprintf("%s_%s.png", base, comp))
		if err := pixio.WriteFile(out, disp, true); err != nil {
			return err
		}
		a.logger.Debug("wrote display component", zap.Stringer("component", comp), zap.String("path", out))
	}
	return nil
}

func writeStats(p *message.Printer, w io.Writer, m grid.Real) {
	mean, std := stat.MeanStdDev(m.Data, nil)
	p.Fprintf(w, "%.3f\t%.3f\t%.3f\t%.3f\n", floats.Min(m.Data), floats.Max(m.Data), mean, std)
}
