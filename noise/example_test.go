package noise_test

import (
	"fmt"

	"github.com/cwbudde/algo-noise/noise"
)

func ExampleGenerator_Generate() {
	g := noise.NewGenerator(noise.WithSeed(1))
	x, err := g.Generate(512, noise.ColorPink)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(x))

	// Output:
	// 512
}

func ExampleParseColor() {
	c, err := noise.ParseColor("violet")
	if err != nil {
		panic(err)
	}
	fmt.Println(c)

	_, err = noise.ParseColor("beige")
	fmt.Println(err)

	// Output:
	// violet
	// noise: invalid color: "beige"
}

func ExampleGenerator_Cycle() {
	g := noise.NewGenerator(noise.WithSeed(1))
	c, err := g.Cycle(2, noise.ColorWhite)
	if err != nil {
		panic(err)
	}

	a, b := c.Next(), c.Next()
	fmt.Println(c.Next() == a, c.Next() == b)

	// Output:
	// true true
}

func ExampleNormalise() {
	x := noise.Normalise([]float64{-0.5, 0.25, 1.25})
	fmt.Printf("%.1f %.1f %.1f\n", x[0], x[1], x[2])

	// Output:
	// -0.4 0.2 1.0
}

func ExampleHeaviside() {
	fmt.Println(noise.Heaviside(-1), noise.Heaviside(0), noise.Heaviside(1))

	// Output:
	// 0 0.5 1
}
