// Command simulate runs many headless matches with a randomized deploy policy
// and reports win/loss statistics. Useful to sanity-check a wave plan or to
// exercise the engine under load.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/janpfeifer/antsGo/internal/parameters"
	"github.com/janpfeifer/antsGo/internal/state"
	"github.com/janpfeifer/must"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

var (
	flagConfig = flag.String("config", "",
		"Game configuration, \"key=value\" pairs separated by commas, see cmd/ants.")
	flagNumMatches  = flag.Int("num_matches", 100, "Number of matches to simulate.")
	flagMaxTurns    = flag.Int("max_turns", 200, "Give up on a match after this many turns.")
	flagParallelism = flag.Int("parallelism", 0, "Concurrent matches, 0 for GOMAXPROCS.")
)

// Results aggregates match outcomes across the worker pool.
type Results struct {
	mu                sync.Mutex
	played, wins      int
	losses, undecided int
	turnsToDecision   int
	start             time.Time
}

func (r *Results) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	avgTurns := 0.0
	if decided := r.wins + r.losses; decided > 0 {
		avgTurns = float64(r.turnsToDecision) / float64(decided)
	}
	return fmt.Sprintf("%d matches: %d won, %d lost, %d undecided, %.1f turns/decision - %s",
		r.played, r.wins, r.losses, r.undecided, avgTurns, time.Since(r.start).Round(time.Millisecond))
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	baseCfg := must.M1(state.ConfigFromParams(parameters.NewFromConfigString(*flagConfig)))
	parallelism := *flagParallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	r := &Results{start: time.Now()}
	var wg errgroup.Group
	wg.SetLimit(parallelism)
	for matchIdx := range *flagNumMatches {
		wg.Go(func() error {
			cfg := baseCfg
			cfg.Seed = baseCfg.Seed + uint64(matchIdx)
			outcome, turns, err := runMatch(cfg)
			if err != nil {
				return err
			}
			r.mu.Lock()
			defer r.mu.Unlock()
			r.played++
			switch outcome {
			case state.OutcomeWon:
				r.wins++
				r.turnsToDecision += turns
			case state.OutcomeLost:
				r.losses++
				r.turnsToDecision += turns
			default:
				r.undecided++
			}
			return nil
		})
	}
	must.M(wg.Wait())
	fmt.Println(r)
}

// runMatch plays one match with a random deploy policy until it is decided or
// maxTurns is reached.
func runMatch(cfg state.Config) (state.Outcome, int, error) {
	game := state.NewGame(cfg, nil)
	rng := rand.New(rand.NewPCG(cfg.Seed, 0xda3e39cb94b95bdb))
	for turn := 0; turn < *flagMaxTurns; turn++ {
		randomDeploy(game, rng)
		if err := game.AdvanceTurn(); err != nil {
			return state.OutcomeUndecided, turn, err
		}
		if outcome := game.Outcome(); outcome != state.OutcomeUndecided {
			return outcome, game.Turn, nil
		}
	}
	return state.OutcomeUndecided, *flagMaxTurns, nil
}

// randomDeploy places one random affordable ant on a random free place, most
// turns. A crude stand-in for a player.
func randomDeploy(game *state.Game, rng *rand.Rand) {
	if rng.Float64() < 0.25 {
		return // Hoard food this turn.
	}
	c := game.Colony
	kind := state.AntKinds[rng.IntN(len(state.AntKinds))]
	if c.Food < kind.Cost() {
		return
	}
	row := rng.IntN(c.Tunnels())
	col := rng.IntN(c.TunnelLength())
	p, _ := c.PlaceAt(row, col)
	// Occupied slots or other rejections just skip the turn's deploy.
	_ = c.Deploy(state.NewAnt(kind), p)
}
