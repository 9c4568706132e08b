package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"github.com/weftworks/weft"
)

const (
	itersKey   = "iters"
	statsKey   = "stats"
	profileKey = "profile"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Benchmark the weft reactive graph",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Writes per propagate case",
				Value: 100,
			},
			&cli.BoolFlag{
				Name:  statsKey,
				Usage: "Dump per-node graph stats after each case",
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to the given path",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "propagate",
				Usage:  "Write latency across w*h computed grids",
				Action: withProfile(runPropagate),
			},
			{
				Name:   "layers",
				Usage:  "Recompute counts across layered graphs with dynamic dependencies",
				Action: withProfile(runLayers),
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func withProfile(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if path := cmd.String(profileKey); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				return err
			}
			defer pprof.StopCPUProfile()
		}
		return action(ctx, cmd)
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
)

func runPropagate(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	tbl := table.NewWriter()
	tbl.SetTitle("Weft Signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			g := weft.NewGraph()
			src := weft.Signal(g, 1)
			for i := 0; i < w; i++ {
				var last weft.Readable[int] = src
				for j := 0; j < h; j++ {
					prev := last
					last = weft.Map1(g, prev, func(v int) int {
						return v + 1
					})
				}
				tail := last
				if _, err := weft.Effect(g, func() error {
					_, err := tail.Value()
					return err
				}); err != nil {
					return err
				}
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				if err := src.Set(must(src.Peek()) + 1); err != nil {
					return err
				}
				tach.AddTime(time.Since(start))
			}

			if cmd.Bool(statsKey) {
				g.DumpStats(os.Stdout)
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	tbl.Render()
	return nil
}

type layersCase struct {
	name           string
	width          int
	totalLayers    int
	nSources       int
	staticFraction float64
	iterations     int
}

func runLayers(ctx context.Context, cmd *cli.Command) error {
	cases := []layersCase{
		{name: "simple", width: 10, totalLayers: 5, nSources: 2, staticFraction: 1, iterations: 10_000},
		{name: "dynamic", width: 10, totalLayers: 10, nSources: 6, staticFraction: 0.75, iterations: 5_000},
		{name: "wide dense", width: 1_000, totalLayers: 5, nSources: 25, staticFraction: 1, iterations: 500},
		{name: "deep", width: 5, totalLayers: 500, nSources: 3, staticFraction: 1, iterations: 500},
		{name: "very dynamic", width: 100, totalLayers: 15, nSources: 6, staticFraction: 0.5, iterations: 1_000},
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"case", "size", "sources", "static", "writes", "recomputes", "elapsed", "recomputes/ms"})

	for _, tc := range cases {
		log.Printf("running %q", tc.name)

		var recomputes int64
		g := weft.NewGraph()
		sources, leaves := buildLayeredGraph(g, tc, &recomputes)

		start := time.Now()
		for i := 0; i < tc.iterations; i++ {
			src := sources[i%len(sources)]
			if err := src.Set(must(src.Peek()) + 1); err != nil {
				return err
			}
			for _, leaf := range leaves {
				if _, err := leaf.Value(); err != nil {
					return err
				}
			}
		}
		elapsed := time.Since(start)

		if cmd.Bool(statsKey) {
			g.DumpStats(os.Stdout)
		}

		rate := float64(recomputes) / (float64(elapsed) / float64(time.Millisecond))
		tbl.Append([]string{
			tc.name,
			fmt.Sprintf("%dx%d", tc.width, tc.totalLayers),
			fmt.Sprint(tc.nSources),
			fmt.Sprintf("%.2f", tc.staticFraction),
			humanize.Comma(int64(tc.iterations)),
			humanize.Comma(recomputes),
			fmt.Sprint(elapsed.Round(time.Microsecond)),
			humanize.Comma(int64(rate)),
		})
	}

	tbl.Render()
	return nil
}

// buildLayeredGraph stacks rows of computeds on top of a row of signals. Each
// computed in a layer sums nSources values from the layer below. A non-static
// computed skips one of its sources depending on the parity of the first, so
// every recompute can rewire its dependency edges.
func buildLayeredGraph(g *weft.Graph, tc layersCase, recomputes *int64) ([]*weft.WriteableSignal[int], []*weft.ReadonlySignal[int]) {
	random := rand.New(rand.NewSource(0))

	sources := make([]*weft.WriteableSignal[int], tc.width)
	prev := make([]weft.Readable[int], tc.width)
	for i := range sources {
		sources[i] = weft.Signal(g, i)
		prev[i] = sources[i]
	}

	var leaves []*weft.ReadonlySignal[int]
	for layer := 1; layer < tc.totalLayers; layer++ {
		row := make([]weft.Readable[int], tc.width)
		for i := 0; i < tc.width; i++ {
			deps := make([]weft.Readable[int], tc.nSources)
			for s := range deps {
				deps[s] = prev[(i+s)%tc.width]
			}
			static := random.Float64() < tc.staticFraction
			c := weft.Computed(g, func(_ int) (int, error) {
				*recomputes++
				sum, err := deps[0].Value()
				if err != nil {
					return 0, err
				}
				skip := -1
				if !static && sum&1 == 1 {
					skip = 1 + sum%(len(deps)-1)
				}
				for d := 1; d < len(deps); d++ {
					if d == skip {
						continue
					}
					v, err := deps[d].Value()
					if err != nil {
						return 0, err
					}
					sum += v
				}
				return sum, nil
			})
			row[i] = c
			if layer == tc.totalLayers-1 {
				leaves = append(leaves, c)
			}
		}
		prev = row
	}
	return sources, leaves
}
