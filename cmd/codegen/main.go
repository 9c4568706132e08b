package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/weftworks/weft/cmd/codegen/templates"
)

const (
	arityCountKey = "count"
	outputKey     = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the fixed-arity Map/Watch helpers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Output file path",
				Value: "map_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for weft started")
	defer func() {
		log.Printf("Codegen for weft finished in %v", time.Since(start))
	}()

	count := cmd.Uint(arityCountKey)
	out := cmd.String(outputKey)
	log.Printf("Generating arities 1..%d into %s", count, out)

	contents := templates.MapGen(int(count))
	return os.WriteFile(out, []byte(contents), 0644)
}
