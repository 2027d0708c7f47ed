package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/slotparty/relay"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	profileKey = "profile"
	itersKey   = "iters"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure destroy and emit latency of relay",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to default.pgo",
			},
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Samples per benchmark",
				Value: 100,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var (
	fans        = []int{1, 10, 100, 1_000}
	backgrounds = []int{0, 1_000, 10_000}
)

type peer struct {
	relay.Node
	hits int
}

func (p *peer) hit(n int) {
	p.hits += n
}

var (
	ping = relay.NewSignal[int]("ping")
	hit  = relay.NewSlot("hit", (*peer).hit)
)

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(profileKey) {
		f, err := os.Create("default.pgo")
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))
	log.Printf("warming up")
	benchmarkDestroy(iters, false)

	benchmarkDestroy(iters, true)
	benchmarkEmit(iters, true)
	return nil
}

// background fills rs with n nodes wired in pairs so the registry holds
// connections unrelated to the measured node.
func background(rs *relay.Registry, n int) {
	for i := 0; i+1 < n; i += 2 {
		a := &peer{Node: rs.NewNode("")}
		b := &peer{Node: rs.NewNode("")}
		relay.Connect(a, ping, b, hit)
	}
}

func benchmarkDestroy(iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Destroy (receiver side)")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, fan := range fans {
		for _, bg := range backgrounds {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := relay.New(relay.WithCapacity(bg + fan + 1))
			background(rs, bg)
			emitters := make([]*peer, fan)
			for i := range emitters {
				emitters[i] = &peer{Node: rs.NewNode("")}
			}

			for i := 0; i < iters; i++ {
				victim := &peer{Node: rs.NewNode("victim")}
				for _, e := range emitters {
					relay.Connect(e, ping, victim, hit)
				}

				start := time.Now()
				victim.Destroy()
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("destroy: fan %d, background %d", fan, bg),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkEmit(iters int, shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Emit")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, fan := range fans {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		rs := relay.New()
		src := &peer{Node: rs.NewNode("src")}
		for i := 0; i < fan; i++ {
			relay.Connect(src, ping, &peer{Node: rs.NewNode("")}, hit)
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			relay.Emit(src, ping, i)
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("emit: fan %d", fan),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
