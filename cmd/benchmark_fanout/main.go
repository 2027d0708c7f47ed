package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/delaneyj/slotparty/relay"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	repeatsKey = "repeats"
	seedKey    = "seed"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_fanout",
		Usage: "Emit through fan-out graphs while receivers churn",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Runs per config, the best one is reported",
				Value: 5,
			},
			&cli.UintFlag{
				Name:  seedKey,
				Usage: "Seed for picking churned receivers",
				Value: 1,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type benchmarkTestConfig struct {
	name          string  // friendly name for the test, should be unique
	emitters      int64   // number of emitting nodes
	receivers     int64   // receivers connected to each emitter
	signals       int64   // signals per emitter, each receiver listens to all of them
	churn         float64 // fraction of receivers destroyed and replaced each iteration
	iterations    int64   // number of test iterations
	expectedCount int64   // slot invocations over all iterations, for verification
}

type results struct {
	count    int64
	duration time.Duration
	nodes    int
	conns    int
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting fanout benchmark, please wait...")
	defer log.Print("Finished fanout benchmark")

	cfgs := []benchmarkTestConfig{
		{name: "single", emitters: 1, receivers: 1, signals: 1, iterations: 100_000},
		{name: "wide", emitters: 1, receivers: 1_000, signals: 1, iterations: 1_000},
		{name: "many emitters", emitters: 1_000, receivers: 10, signals: 2, iterations: 100},
		{name: "churn", emitters: 10, receivers: 100, signals: 3, churn: 0.1, iterations: 500},
		{name: "heavy churn", emitters: 100, receivers: 100, signals: 1, churn: 0.5, iterations: 100},
	}
	for i := range cfgs {
		c := &cfgs[i]
		c.expectedCount = c.iterations * c.emitters * c.receivers * c.signals
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "emitters", "receivers", "signals", "churn%",
		"nTimes", "nodes", "connections", "time", "calls/ms",
	})

	repeats := int(cmd.Uint(repeatsKey))
	rng := rand.New(rand.NewSource(int64(cmd.Uint(seedKey))))
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)
		best := &results{duration: time.Hour}
		for i := 0; i < repeats; i++ {
			res := runGraph(cfg, rng)
			if res.count != cfg.expectedCount {
				return fmt.Errorf("%s: got %d invocations, want %d", cfg.name, res.count, cfg.expectedCount)
			}
			if res.duration < best.duration {
				best = res
			}
		}

		rate := float64(best.count) / (float64(best.duration) / float64(time.Millisecond))
		table.Append([]string{
			cfg.name,
			fmt.Sprint(cfg.emitters),
			fmt.Sprint(cfg.receivers),
			fmt.Sprint(cfg.signals),
			fmt.Sprint(100 * cfg.churn),
			humanize.Comma(cfg.iterations),
			humanize.Comma(int64(best.nodes)),
			humanize.Comma(int64(best.conns)),
			fmt.Sprint(best.duration),
			humanize.Comma(int64(rate)),
		})
	}
	table.Render()
	return nil
}

type source struct {
	relay.Node
}

type sink struct {
	relay.Node
	counter *int64
}

func (s *sink) count(n int) {
	*s.counter++
}

var countSlot = relay.NewSlot("count", (*sink).count)

func runGraph(cfg benchmarkTestConfig, rng *rand.Rand) *results {
	counter := new(int64)
	rs := relay.New()

	sigs := make([]*relay.Signal[int], cfg.signals)
	for i := range sigs {
		sigs[i] = relay.NewSignal[int](fmt.Sprintf("s%d", i))
	}

	wire := func(src *source) *sink {
		s := &sink{Node: rs.NewNode(""), counter: counter}
		for _, sig := range sigs {
			relay.Connect(src, sig, s, countSlot)
		}
		return s
	}

	sources := make([]*source, cfg.emitters)
	sinks := make([][]*sink, cfg.emitters)
	for i := range sources {
		sources[i] = &source{Node: rs.NewNode("")}
		sinks[i] = make([]*sink, cfg.receivers)
		for j := range sinks[i] {
			sinks[i][j] = wire(sources[i])
		}
	}

	replace := int(cfg.churn * float64(cfg.receivers))
	res := &results{}
	start := time.Now()
	for it := int64(0); it < cfg.iterations; it++ {
		for i, src := range sources {
			for k := 0; k < replace; k++ {
				j := rng.Intn(len(sinks[i]))
				sinks[i][j].Destroy()
				sinks[i][j] = wire(src)
			}
			for _, sig := range sigs {
				relay.Emit(src, sig, int(it))
			}
		}
	}
	res.duration = time.Since(start)
	res.count = *counter

	stats := rs.Stats()
	res.nodes = stats.Nodes
	res.conns = stats.Connections
	return res
}
