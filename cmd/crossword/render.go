package main

import (
	"github.com/pterm/pterm"
	"pokercrossword/pkg/crossword"
	"pokercrossword/pkg/poker"
)

// render prints every puzzle as a boxed table
func render(puzzles []*crossword.Puzzle, color bool) error {
	if !color {
		pterm.DisableColor()
	}

	for _, p := range puzzles {
		pterm.DefaultSection.Println(p.Name)

		data := p.TableData()
		for i, row := range p.Rows {
			line := data[i+1]
			line[len(line)-1] = styleStrength(row.Strength)
		}

		if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
			return err
		}

		pterm.Println(pterm.Gray(p.ID.String()))
	}

	return nil
}

func styleStrength(s poker.HandStrength) string {
	switch {
	case s >= poker.FourOfAKind:
		return pterm.LightRed(s.String())
	case s >= poker.Straight:
		return pterm.LightGreen(s.String())
	default:
		return pterm.LightCyan(s.String())
	}
}
