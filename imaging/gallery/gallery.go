// Package gallery holds the four source images of a mix.
//
// Each slot owns at most one [spectral.Image]. Registering into an occupied
// slot replaces its image wholesale under a freshly allocated id.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-specmix/imaging/grid"
	"github.com/cwbudde/algo-specmix/imaging/spectral"
)

// Slots is the number of gallery slots.
const Slots = 4

var (
	ErrSlotOutOfRange = errors.New("gallery: slot out of range")
	ErrSlotEmpty      = errors.New("gallery: slot empty")
)

// Gallery maps slot indices 0..3 to images. It is safe for concurrent use.
type Gallery struct {
	ids  spectral.Allocator
	opts []spectral.Option

	mu     sync.RWMutex
	images [Slots]*spectral.Image
}

// New returns an empty gallery. opts are applied to every registered image.
func New(opts ...spectral.Option) *Gallery {
	return &Gallery{opts: opts}
}

// Register creates an image from pixels and stores it in slot, replacing any
// previous image there.
func (g *Gallery) Register(slot int, pixels grid.Real) (*spectral.Image, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	im, err := spectral.New(g.ids.Next(), pixels, g.opts...)
	if err != nil {
		return nil, fmt.Errorf("gallery: slot %d: %w", slot, err)
	}

	g.mu.Lock()
	g.images[slot] = im
	g.mu.Unlock()
	return im, nil
}

// Get returns the image in slot.
func (g *Gallery) Get(slot int) (*spectral.Image, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}
	g.mu.RLock()
	im := g.images[slot]
	g.mu.RUnlock()
	if im == nil {
		return nil, fmt.Errorf("%w: %d", ErrSlotEmpty, slot)
	}
	return im, nil
}

// Clear empties slot.
func (g *Gallery) Clear(slot int) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	g.mu.Lock()
	g.images[slot] = nil
	g.mu.Unlock()
	return nil
}

// Snapshot returns the current slot contents. Empty slots are nil.
func (g *Gallery) Snapshot() [Slots]*spectral.Image {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.images
}

// Full reports whether every slot holds an image.
func (g *Gallery) Full() bool {
	for _, im := range g.Snapshot() {
		if im == nil {
			return false
		}
	}
	return true
}

// Normalize resizes the four images to their common minimum shape and
// returns the batch a mix is built from. Every slot must be populated.
func (g *Gallery) Normalize(ctx context.Context) (*spectral.Batch, error) {
	snap := g.Snapshot()
	for i, im := range snap {
		if im == nil {
			return nil, fmt.Errorf("%w: %d", ErrSlotEmpty, i)
		}
	}
	return spectral.Normalize(ctx, snap[:]...)
}

func checkSlot(slot int) error {
	if slot < 0 || slot >= Slots {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}
	return nil
}
