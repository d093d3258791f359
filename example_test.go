package fastcluster_test

import (
	"context"
	"fmt"

	"github.com/hupe1980/fastcluster"
)

func Example() {
	c, err := fastcluster.New(2, 0)
	if err != nil {
		panic(err)
	}

	for _, p := range [][2]float64{{0, 1}, {1, 0}, {3, 4}, {4, 3}} {
		if err := c.Add(p[0], p[1]); err != nil {
			panic(err)
		}
	}

	clusters := c.Clusters()
	fastcluster.SortClusters(clusters)
	for _, cl := range clusters {
		fmt.Printf("size=%d centroid=(%g, %g)\n", cl.Size, cl.X, cl.Y)
	}
	// Output:
	// size=2 centroid=(0.5, 0.5)
	// size=2 centroid=(3.5, 3.5)
}

func Example_unconstrained() {
	c, _ := fastcluster.New(fastcluster.Unconstrained, 0,
		fastcluster.WithPoints([]fastcluster.Point{fastcluster.Pt(1, 5), fastcluster.Pt(2, 8)}),
	)

	fmt.Println(c.Clusters())
	// Output:
	// [{1.5 6.5 2}]
}

func Example_resolution() {
	points := []fastcluster.Point{
		fastcluster.Pt(0, 1), fastcluster.Pt(1, 0), fastcluster.Pt(3, 4), fastcluster.Pt(4, 3),
		fastcluster.Pt(7, 8), fastcluster.Pt(8, 7), fastcluster.Pt(8, 9), fastcluster.Pt(9, 8),
	}

	c, _ := fastcluster.New(3, 5, fastcluster.WithPoints(points))

	stats := c.Stats()
	fmt.Println(stats.Points, stats.Clusters)
	// Output:
	// 8 2
}

func Example_ingest() {
	c, _ := fastcluster.New(fastcluster.Unconstrained, 0)

	err := c.Ingest(context.Background(),
		[]fastcluster.Point{fastcluster.Pt(0, 0), fastcluster.Pt(2, 0)},
		[]fastcluster.Point{fastcluster.Pt(0, 2), fastcluster.Pt(2, 2)},
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(fastcluster.Total(c.Clusters()))
	// Output:
	// 4
}

func ExampleParseConfig() {
	cfg, err := fastcluster.ParseConfig([]byte("separation: 25\nresolution: 15\nstrategy: scan\n"))
	if err != nil {
		panic(err)
	}

	c, err := fastcluster.NewFromConfig(cfg)
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Separation(), c.Resolution(), c.Strategy())
	// Output:
	// 25 15 scan
}
