package main

import (
	"context"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/slotparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputKey            = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the arity helpers of the relay package",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Highest signal arity to generate",
				Value: 6,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "relay/arity_gen.go",
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
	log.Printf("Codegen for relay started !")
	defer func() {
		log.Printf("Codegen for relay finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(genericParamCountKey))
	if count < 2 {
		count = 2
	}
	log.Printf("Arity: 2..%d", count)

	contents, err := format.Source([]byte(templates.ArityGen(count)))
	if err != nil {
		return err
	}
	return os.WriteFile(cmd.String(outputKey), contents, 0644)
}
