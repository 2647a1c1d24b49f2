// Package cli implements the terminal front end: a board renderer and the
// interactive command shell driving the engine. It carries no game logic.
package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/antsGo/internal/generics"
	. "github.com/janpfeifer/antsGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

const cellWidth = 9

var ansiFilter = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// displayWidth of s removes its color/control sequences and returns the length of what is left.
func displayWidth(s string) int {
	return len(ansiFilter.ReplaceAllString(s, ""))
}

func printCentered(block string) {
	lines := strings.Split(block, "\n")
	terminalWidth, _, _ := term.GetSize(int(os.Stdout.Fd()))
	blockWidth := 0
	for _, line := range lines {
		if w := displayWidth(line); w > blockWidth {
			blockWidth = w
		}
	}
	indent := (terminalWidth - blockWidth) / 2
	if indent < 0 {
		indent = 0
	}
	for _, line := range lines {
		if len(line) == 0 {
			fmt.Println()
			continue
		}
		fmt.Printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

func centerString(s string, fit int) string {
	if len(s) >= fit {
		return s
	}
	marginLeft := (fit - len(s)) / 2
	return strings.Repeat(" ", marginLeft) + s + strings.Repeat(" ", fit-len(s)-marginLeft)
}

// UI runs an interactive match on the terminal.
type UI struct {
	game               *Game
	color, clearScreen bool
	reader             *bufio.Reader
}

var (
	deployParser = regexp.MustCompile(`^(?:deploy|d)\s+(\w+)\s+(-?\d+\s*,\s*-?\d+)$`)
	removeParser = regexp.MustCompile(`^(?:remove|r)\s+(-?\d+\s*,\s*-?\d+)$`)
	boostParser  = regexp.MustCompile(`^(?:boost|b)\s+(\w+)\s+(-?\d+\s*,\s*-?\d+)$`)

	errTooManyParsingErrors = errors.New("failed to read command 3 times")
)

// New creates a UI for the given game.
func New(game *Game, color, clearScreen bool) *UI {
	return &UI{
		game:        game,
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(os.Stdin),
	}
}

// Run plays the match until it is decided or the player quits.
func (ui *UI) Run() error {
	for {
		ui.Print()
		if outcome := ui.game.Outcome(); outcome != OutcomeUndecided {
			ui.PrintOutcome(outcome)
			return nil
		}
		quit, err := ui.ReadCommand()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// ReadCommand prompts for and executes one player command. It retries parsing
// up to 3 times; engine errors (occupied, insufficient food, ...) are reported
// and count as a handled command.
func (ui *UI) ReadCommand() (quit bool, err error) {
	for numErrs := 0; numErrs < 3; numErrs++ {
		fmt.Printf("    turn %d, food %d > ", ui.game.Turn, ui.game.Colony.Food)
		var text string
		text, err = ui.reader.ReadString('\n')
		if err != nil {
			return false, err
		}
		text = strings.ToLower(strings.TrimSpace(text))

		switch text {
		case "turn", "t", "":
			if err := ui.game.AdvanceTurn(); err != nil {
				return false, err
			}
			return false, nil
		case "help", "h", "?":
			ui.printHelp()
			return false, nil
		case "quit", "q":
			return true, nil
		}

		var cmdErr error
		switch {
		case deployParser.MatchString(text):
			matches := deployParser.FindStringSubmatch(text)
			cmdErr = ui.game.DeployByName(matches[1], matches[2])
		case removeParser.MatchString(text):
			matches := removeParser.FindStringSubmatch(text)
			cmdErr = ui.game.RemoveAt(matches[1])
		case boostParser.MatchString(text):
			matches := boostParser.FindStringSubmatch(text)
			cmdErr = ui.game.BoostAt(ui.canonicalBoostName(matches[1]), matches[2])
		default:
			fmt.Printf("    * Failed to parse %q, type 'help' for the commands.\n", text)
			continue
		}
		if cmdErr != nil {
			fmt.Printf("    * %v\n", cmdErr)
		}
		return false, nil
	}
	return false, errTooManyParsingErrors
}

// canonicalBoostName matches the lower-cased user input back to the mixed-case
// boost names of the inventory.
func (ui *UI) canonicalBoostName(name string) string {
	for _, known := range ui.game.Colony.AvailableBoosts() {
		if strings.EqualFold(string(known), name) {
			return string(known)
		}
	}
	return name
}

func (ui *UI) printHelp() {
	fmt.Print(`
  Commands:
    deploy <kind> <row,col>   place an ant: Grower, Thrower, Eater, Scuba, Guard (or G/T/E/S/B)
    remove <row,col>          remove the ant there (guard first)
    boost <name> <row,col>    activate a discovered boost on the ant there
    turn (or just Enter)      let the round play out
    quit

`)
}

// Print renders the whole game view: board, inventory and hive status.
func (ui *UI) Print() {
	if ui.clearScreen {
		fmt.Print("\033c")
	}
	fmt.Printf("\nTurn #%d\n\n", ui.game.Turn)
	ui.PrintBoard()
	fmt.Println()
	ui.printStatus()
}

// PrintBoard draws the tunnel grid. Each cell shows the terrain, the guard and
// regular ant letters (lower-case marks an Eater still digesting) and the
// number of bees present.
func (ui *UI) PrintBoard() {
	var buf bytes.Buffer
	c := ui.game.Colony

	queenCell := " Q "
	if n := len(c.Queen().Bees); n > 0 {
		queenCell = fmt.Sprintf("Q*%d", n)
	}
	for row := 0; row < c.Tunnels(); row++ {
		_, _ = fmt.Fprintf(&buf, "%s |", ui.colorQueen(queenCell))
		for col := 0; col < c.TunnelLength(); col++ {
			p, _ := c.PlaceAt(row, col)
			_, _ = fmt.Fprint(&buf, ui.renderPlace(p), "|")
		}
		_, _ = fmt.Fprintln(&buf)
	}
	_, _ = fmt.Fprintf(&buf, "\n%s\n", ui.columnRuler(c.TunnelLength()))
	printCentered(buf.String())
}

func (ui *UI) renderPlace(p *Place) string {
	terrain := " "
	if p.Water {
		terrain = "~"
	}
	occupants := ""
	if p.Guard != nil {
		occupants += AntKindLetters[Guard]
	}
	if p.Ant != nil {
		letter := AntKindLetters[p.Ant.Kind]
		if p.Ant.Kind == Eater && p.Ant.Stomach() != nil {
			letter = strings.ToLower(letter)
		}
		occupants += letter
	}
	cell := terrain + centerString(occupants, 3)
	if len(p.Bees) > 0 {
		cell += fmt.Sprintf("b%-2d", len(p.Bees))
	} else {
		cell += "   "
	}
	return ui.colorTerrain(p.Water, centerString(cell, cellWidth-2))
}

func (ui *UI) columnRuler(length int) string {
	var ruler strings.Builder
	ruler.WriteString("    ")
	for col := 0; col < length; col++ {
		ruler.WriteString(centerString(fmt.Sprint(col), cellWidth-1))
	}
	return ruler.String()
}

func (ui *UI) printStatus() {
	names := generics.SliceMap(ui.game.Colony.AvailableBoosts(), func(name BoostName) string {
		return fmt.Sprintf("%s-%d", name, ui.game.Colony.BoostCount(name))
	})
	fmt.Printf("  Food: %d   Boosts: [%s]\n", ui.game.Colony.Food, strings.Join(names, ", "))
	fmt.Printf("  Bees: %d on the board, %d still in the hive\n",
		ui.game.Colony.BeesOnBoard(), ui.game.Hive.Pending())
}

// PrintOutcome announces the final verdict with a banner.
func (ui *UI) PrintOutcome(outcome Outcome) {
	fmt.Println()
	switch outcome {
	case OutcomeWon:
		printCentered(
			lipgloss.NewStyle().
				Background(lipgloss.Color("2")).
				Foreground(lipgloss.Color("0")).
				Padding(1, 2).
				Render("*** The colony holds! All bees are gone. YOU WIN! ***"))
	case OutcomeLost:
		printCentered(
			lipgloss.NewStyle().
				Background(lipgloss.Color("1")).
				Foreground(lipgloss.Color("15")).
				Padding(1, 2).
				Render("*** The bees reached the queen. YOU LOSE. ***"))
	}
	fmt.Println()
}

func (ui *UI) colorQueen(s string) string {
	if !ui.color {
		return s
	}
	return "\033[30;43;1m" + s + "\033[39;49;0m"
}

func (ui *UI) colorTerrain(water bool, s string) string {
	if !ui.color || !water {
		return s
	}
	return "\033[37;44m" + s + "\033[39;49;0m"
}
