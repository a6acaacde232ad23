// Command analyze prints quick, human-readable facts about every setup in a
// setups directory: material on each side, how many legal moves each side
// has, pieces already standing on traps or in the water, and whether the
// position is already decided.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/wricardo/jungle-game/game/config"
	"github.com/wricardo/jungle-game/game/engine"
)

// SideReport summarizes one side of a setup
type SideReport struct {
	Pieces     int
	Material   int // sum of ranks
	LegalMoves int
	OnTraps    int // pieces standing on an enemy trap
	InWater    int
}

// Analysis is the report for a single setup
type Analysis struct {
	Name    string
	Turn    engine.Side
	Winner  engine.Side
	Red     SideReport
	Black   SideReport
	Threats []engine.Move // captures available to the side to move
}

func main() {
	dir := "setups"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	manager, err := config.NewManager(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	infos, err := manager.ListSetups()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing setups: %v\n", err)
		os.Exit(1)
	}

	for _, info := range infos {
		fmt.Printf("\n=== Analyzing %s ===\n", info.SetupID)
		setup, err := manager.LoadSetup(info.SetupID)
		if err != nil {
			fmt.Printf("Error loading setup: %v\n", err)
			continue
		}
		a, err := analyzeSetup(setup)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		printAnalysis(os.Stdout, a)
	}
}

func analyzeSetup(setup *engine.Setup) (*Analysis, error) {
	b, err := setup.Board()
	if err != nil {
		return nil, err
	}

	a := &Analysis{
		Name:   setup.Name,
		Turn:   b.Turn(),
		Winner: b.Winner(),
		Red:    sideReport(b, engine.Red),
		Black:  sideReport(b, engine.Black),
	}

	if a.Winner == engine.SideNone {
		for _, m := range b.LegalMoves(b.Turn()) {
			if b.HasPiece(m.To.Row, m.To.Col) {
				a.Threats = append(a.Threats, m)
			}
		}
	}
	return a, nil
}

func sideReport(b *engine.Board, side engine.Side) SideReport {
	var r SideReport
	for row := 0; row < engine.Rows; row++ {
		for col := 0; col < engine.Cols; col++ {
			p := b.PieceAt(row, col)
			if p.Side != side {
				continue
			}
			r.Pieces++
			r.Material += p.Rank()

			t := b.TerrainAt(row, col)
			if t.IsTrap() && t.Owner() == side.Opponent() {
				r.OnTraps++
			}
			if t == engine.Water {
				r.InWater++
			}
		}
	}
	r.LegalMoves = len(b.LegalMoves(side))
	return r
}

func printAnalysis(w io.Writer, a *Analysis) {
	fmt.Fprintf(w, "Name: %s\n", a.Name)
	fmt.Fprintf(w, "To move: %s\n", a.Turn)
	for _, s := range []struct {
		side   engine.Side
		report SideReport
	}{{engine.Red, a.Red}, {engine.Black, a.Black}} {
		r := s.report
		fmt.Fprintf(w, "%-5s pieces=%d material=%d moves=%d on_traps=%d in_water=%d\n",
			s.side, r.Pieces, r.Material, r.LegalMoves, r.OnTraps, r.InWater)
	}

	if a.Winner != engine.SideNone {
		fmt.Fprintf(w, "⚠️  WARNING: position is already won by %s\n", a.Winner)
		return
	}
	if len(a.Threats) > 0 {
		fmt.Fprintf(w, "⚠️  %s can capture on the first move:\n", a.Turn)
		for _, m := range a.Threats {
			fmt.Fprintf(w, "   %s\n", m)
		}
	} else {
		fmt.Fprintf(w, "✅ No captures available on the first move\n")
	}
}
