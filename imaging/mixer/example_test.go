package mixer_test

import (
	"context"
	"fmt"

	"github.com/cwbudde/algo-specmix/imaging/grid"
	"github.com/cwbudde/algo-specmix/imaging/mixer"
	"github.com/cwbudde/algo-specmix/imaging/region"
	"github.com/cwbudde/algo-specmix/imaging/spectral"
)

func ExampleMixer_Reconstruct() {
	pixels, _ := grid.RealFromRows([][]float64{
		{10, 20, 30},
		{40, 50, 60},
	})

	var ids spectral.Allocator
	var images []*spectral.Image
	for range mixer.Slots {
		im, _ := spectral.New(ids.Next(), pixels)
		images = append(images, im)
	}
	batch, _ := spectral.Normalize(context.Background(), images...)

	m, _ := mixer.New([mixer.Slots]mixer.Slot{
		{Weight: 1, Component: spectral.Real},
		{Weight: 1, Component: spectral.Imaginary},
		{Weight: 0, Component: spectral.Real},
		{Weight: 0, Component: spectral.Imaginary},
	}, batch)

	out, _ := m.Reconstruct(context.Background(), region.None, region.Rect{})
	for _, row := range out.Rows2D() {
		fmt.Printf("%.0f %.0f %.0f\n", row[0], row[1], row[2])
	}
	// Output:
	// 10 20 30
	// 40 50 60
}

func ExampleSelectFamily() {
	f, err := mixer.SelectFamily([mixer.Slots]spectral.Component{
		spectral.Magnitude, spectral.Phase, spectral.Phase, spectral.Magnitude,
	})
	fmt.Println(f, err)

	_, err = mixer.SelectFamily([mixer.Slots]spectral.Component{
		spectral.Magnitude, spectral.Real, spectral.Phase, spectral.Imaginary,
	})
	fmt.Println(err != nil)
	// Output:
	// magnitude/phase <nil>
	// true
}
