package console

import (
	"github.com/park285/Cheese-MiniChess/internal/minichess"
	"github.com/park285/Cheese-MiniChess/pkg/minidto"
)

// ToDTOState converts a game snapshot into its wire form.
func ToDTOState(s minichess.Snapshot) minidto.SessionState {
	state := minidto.SessionState{
		GameID:     s.GameID,
		SideToMove: s.SideToMove.String(),
		Phase:      s.Phase.String(),
		Turn:       s.Turn,
		Board:      s.Board.Ranks(),
		Selection:  toDTOSelection(s.Selection),
		Dice:       toDTODice(s.Dice),
		Checkmate:  s.Checkmate,
	}
	return state
}

func toDTOSelection(sel *minichess.Selection) *minidto.Selection {
	if sel == nil {
		return nil
	}
	moves := make([]minidto.Cell, 0, len(sel.Moves))
	for _, c := range sel.Moves {
		moves = append(moves, toDTOCell(c))
	}
	return &minidto.Selection{From: toDTOCell(sel.From), Moves: moves}
}

func toDTOCell(c minichess.Cell) minidto.Cell {
	return minidto.Cell{Row: c.Row, Col: c.Col}
}

func toDTODice(d minichess.DiceRoll) minidto.Dice {
	out := minidto.Dice{
		Values: make([]int, 0, minichess.DiceCount),
		Kinds:  make([]string, 0, minichess.DiceCount),
	}
	for i := 0; i < minichess.DiceCount; i++ {
		out.Values = append(out.Values, d.Values[i])
		out.Kinds = append(out.Kinds, d.Kind(i).String())
	}
	return out
}
