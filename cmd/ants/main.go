// Command ants plays an interactive ants-vs-bees match on the terminal.
//
// The colony and the assault plan are configured with --config, a
// comma-separated list of key=value pairs, e.g.:
//
//	ants --config "tunnels=3,length=9,water=3,food=4,waves=5,seed=7"
package main

import (
	"flag"
	"fmt"

	"github.com/janpfeifer/antsGo/internal/event"
	"github.com/janpfeifer/antsGo/internal/parameters"
	"github.com/janpfeifer/antsGo/internal/state"
	"github.com/janpfeifer/antsGo/internal/ui/cli"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagConfig = flag.String("config", "",
		"Game configuration, \"key=value\" pairs separated by commas. "+
			"Keys: tunnels, length, water, food, bee_armor, bee_damage, "+
			"wave_start, wave_interval, waves, wave_size, wave_growth, seed.")
	flagColor       = flag.Bool("color", true, "Colored board output.")
	flagClearScreen = flag.Bool("clear", false, "Clear the screen between turns.")
	flagNarrate     = flag.Bool("narrate", true, "Print narrative game events.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	params := parameters.NewFromConfigString(*flagConfig)
	cfg := must.M1(state.ConfigFromParams(params))

	var dispatcher *event.Dispatcher
	if *flagNarrate {
		dispatcher = event.NewDispatcher()
		subscribeNarrator(dispatcher)
	}
	game := state.NewGame(cfg, dispatcher)
	ui := cli.New(game, *flagColor, *flagClearScreen)
	if err := ui.Run(); err != nil {
		klog.Exitf("Match aborted: %+v", err)
	}
}

// subscribeNarrator prints a short line per notable game event, replacing the
// logging the engine itself never does.
func subscribeNarrator(dispatcher *event.Dispatcher) {
	narrate := func(format string) event.Listener {
		return event.ListenerFunc(func(e event.Event) {
			if e.Data != nil {
				fmt.Printf("  ~ "+format+"\n", e.Data)
			} else {
				fmt.Println("  ~ " + format)
			}
		})
	}
	dispatcher.Subscribe(event.WaveReleased, narrate("a wave of %v bees storms in"))
	dispatcher.Subscribe(event.AntKilled, narrate("an ant fell: %v"))
	dispatcher.Subscribe(event.BeeKilled, event.ListenerFunc(func(event.Event) {
		fmt.Println("  ~ a bee went down")
	}))
	dispatcher.Subscribe(event.BeeSwallowed, narrate("%v swallowed a bee whole"))
	dispatcher.Subscribe(event.BeeCoughedUp, narrate("%v coughed its meal back up"))
	dispatcher.Subscribe(event.BoostFound, narrate("the growers found a %v"))
}
