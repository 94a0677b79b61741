package spectral

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-specmix/imaging/grid"
)

// Batch is a set of images that share one shape. It can only be produced by
// [Normalize], so holding a Batch proves the images were reconciled.
type Batch struct {
	shape  grid.Shape
	images []*Image
}

// Shape returns the common shape of every image in the batch.
func (b *Batch) Shape() grid.Shape { return b.shape }

// Len returns the number of images.
func (b *Batch) Len() int { return len(b.images) }

// At returns the i-th image in the order given to [Normalize].
func (b *Batch) At(i int) *Image { return b.images[i] }

// Snapshot returns the current components of every image and fails with
// ErrShapeMismatch if any image was resized after normalization.
func (b *Batch) Snapshot() ([]*Components, error) {
	out := make([]*Components, len(b.images))
	for i, im := range b.images {
		c := im.Components()
		if c.Shape() != b.shape {
			return nil, fmt.Errorf("%w: image %d is %s, batch is %s", ErrShapeMismatch, im.ID(), c.Shape(), b.shape)
		}
		out[i] = c
	}
	return out, nil
}

// Normalize resizes every image to the smallest height and the smallest
// width found among them and recomputes their transforms. Images are
// mutated in place, concurrently; the returned Batch lists them in argument
// order. The same image may appear more than once.
func Normalize(ctx context.Context, images ...*Image) (*Batch, error) {
	if len(images) == 0 {
		return nil, ErrEmptyCollection
	}

	target := grid.Shape{}
	for i, im := range images {
		if im == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilImage, i)
		}
		s := im.Shape()
		if i == 0 || s.Rows < target.Rows {
			target.Rows = s.Rows
		}
		if i == 0 || s.Cols < target.Cols {
			target.Cols = s.Cols
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, im := range unique(images) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return im.Resize(target.Rows, target.Cols)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Batch{shape: target, images: append([]*Image(nil), images...)}, nil
}

func unique(images []*Image) []*Image {
	seen := make(map[*Image]struct{}, len(images))
	out := make([]*Image, 0, len(images))
	for _, im := range images {
		if _, ok := seen[im]; ok {
			continue
		}
		seen[im] = struct{}{}
		out = append(out, im)
	}
	return out
}
