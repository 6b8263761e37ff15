// Command minesweep-automated is a terminal host for the automation
// engine: it deals a board, lets you click/flag cells, and can hand
// the board to a SatBackend to run one automation step or dump the
// current constraint set in DIMACS form.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/NKID00/minesweep-automated/automation"
	"github.com/NKID00/minesweep-automated/board"
	"github.com/NKID00/minesweep-automated/logic"
	"github.com/NKID00/minesweep-automated/worker"
)

var (
	width, height, mines int
	seed                 int64
	backendName          string
	debug                bool
)

func main() {
	cmd := &cobra.Command{
		Use:   "minesweep-automated",
		Short: "Play minesweeper against the automation engine's deduction",
		RunE:  runPlay,
	}
	flags := cmd.Flags()
	flags.IntVar(&width, "width", 9, "board width")
	flags.IntVar(&height, "height", 9, "board height")
	flags.IntVar(&mines, "mines", 10, "number of mines")
	flags.Int64Var(&seed, "seed", 0, "mine placement seed (0 picks a random one)")
	flags.StringVar(&backendName, "backend", "dpll", "SAT backend: dpll or saturday")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func resolveBackend() (logic.SatBackend, error) {
	switch backendName {
	case "dpll":
		return logic.DPLLBackend{}, nil
	case "saturday":
		return logic.SaturdayBackend{}, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want dpll or saturday)", backendName)
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
	}
	backend, err := resolveBackend()
	if err != nil {
		return err
	}

	b := board.New(board.Options{Width: width, Height: height, Mines: mines, Seed: seed})
	view := board.NewView(b)
	log.WithFields(log.Fields{"width": width, "height": height, "mines": mines}).Info("dealt a new board")

	w := worker.New(1)
	defer w.Close()

	render(view)
	fmt.Println("commands: click x y | flag x y | auto | auto-loop | dimacs | new | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "new":
			b = board.New(board.Options{Width: width, Height: height, Mines: mines, Seed: seed})
			view = board.NewView(b)
			render(view)
		case "click":
			x, y, err := parseCoord(fields)
			if err != nil {
				fmt.Println(err)
				continue
			}
			view.LeftClick(x, y)
			render(view)
		case "flag":
			x, y, err := parseCoord(fields)
			if err != nil {
				fmt.Println(err)
				continue
			}
			view.RightClick(x, y)
			render(view)
		case "auto":
			result := automation.Solve(view, backend)
			if len(result.MustBeMine) == 0 && len(result.MustNotMine) == 0 {
				fmt.Println("no provable move")
				continue
			}
			for _, c := range result.MustBeMine {
				view.Flag(c.X, c.Y)
				log.Debugf("flagged (%d,%d): provably a mine", c.X, c.Y)
			}
			for _, c := range result.MustNotMine {
				view.Open(c.X, c.Y)
				log.Debugf("opened (%d,%d): provably safe", c.X, c.Y)
			}
			render(view)
		case "auto-loop":
			for {
				w.In <- worker.Snapshot{View: view, Backend: backend}
				result := <-w.Out
				if result.Redraw == nil {
					break
				}
				log.WithField("elapsed", result.Elapsed).Debugf("automation step moved %d cells", len(result.Redraw.Cells))
				if !view.IsPlaying() {
					break
				}
			}
			render(view)
		case "dimacs":
			if err := dumpDimacs(view); err != nil {
				fmt.Println(err)
			}
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func parseCoord(fields []string) (int, int, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("usage: %s x y", fields[0])
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad x coordinate: %w", err)
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("bad y coordinate: %w", err)
	}
	return x, y, nil
}

// dumpDimacs re-derives the same constraint CNF the driver would
// solve against and writes it out in DIMACS form, for feeding to an
// external SAT tool.
func dumpDimacs(view *board.View) error {
	cnf, _, ok := automation.Constraints(view)
	if !ok {
		fmt.Println("c no revealed structure to constrain")
		return nil
	}
	return logic.WriteDIMACS(os.Stdout, cnf)
}

func render(v *board.View) {
	for y := 0; y < v.Height(); y++ {
		var row strings.Builder
		for x := 0; x < v.Width(); x++ {
			row.WriteString(renderCell(v, x, y))
			row.WriteByte(' ')
		}
		fmt.Println(row.String())
	}
	switch v.Result() {
	case board.Win:
		fmt.Println(color.GreenString("you win"))
	case board.Lose:
		fmt.Println(color.RedString("boom"))
	}
}

func renderCell(v *board.View, x, y int) string {
	cell := v.Cell(x, y)
	switch cell.Kind {
	case automation.Flagged:
		return color.YellowString("F")
	case automation.Questioned:
		return color.CyanString("?")
	case automation.Opened:
		if cell.Count == 0 {
			return "."
		}
		return color.BlueString(strconv.Itoa(cell.Count))
	case automation.Exposed:
		return color.RedString("*")
	default:
		return "#"
	}
}
