// Command gossipsim simulates push-pull gossip voting. It reads parameter
// rows from an input CSV, runs every simulation to convergence, and writes
// one result row per run to an output CSV.
package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	flags "github.com/jessevdk/go-flags"

	"gossipsim/internal/batch"
	"gossipsim/internal/sim"
)

type options struct {
	Seed      *int64 `long:"seed" description:"seed for the partner stream, default is the current time"`
	MaxRounds int    `long:"max-rounds" description:"abort a run after this many rounds, 0 means no cap"`
	LogEvery  int    `long:"log-every" description:"log run progress every that many rounds, 0 means quiet"`

	Args struct {
		Input  string `positional-arg-name:"input.csv" description:"parameter rows to simulate"`
		Output string `positional-arg-name:"output.csv" description:"where result rows are written"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS] input.csv output.csv"

	rest, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			return
		}
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}
	if len(rest) > 0 {
		log.Printf("[gossipsim] unexpected arguments: %v", rest)
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	log.Printf("[gossipsim] seed=%d", seed)

	eng := sim.NewEngine(rand.New(rand.NewSource(seed)), opts.MaxRounds, opts.LogEvery)
	if err := batch.Run(opts.Args.Input, opts.Args.Output, eng); err != nil {
		log.Fatalf("[gossipsim] %v", err)
	}
	log.Printf("[gossipsim] results written to %s", opts.Args.Output)
}
