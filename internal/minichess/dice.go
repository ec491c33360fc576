package minichess

import "math/rand/v2"

// DiceCount is the number of dice rolled at once.
const DiceCount = 2

// DiceFaces is the number of faces per die; values run from 0 to DiceFaces-1.
const DiceFaces = 4

// diceKinds maps a face value to the piece shown on it.
var diceKinds = [DiceFaces]Kind{King, Pawn, Knight, Bishop}

// DiceRoll holds the last rolled values. It has no effect on move legality.
type DiceRoll struct {
	Values [DiceCount]int `json:"values"`
}

// Kind returns the piece kind displayed on die i.
func (d DiceRoll) Kind(i int) Kind {
	if i < 0 || i >= DiceCount {
		return Empty
	}
	v := d.Values[i]
	if v < 0 || v >= DiceFaces {
		return Empty
	}
	return diceKinds[v]
}

// Face returns the piece displayed on die i: the first die shows White pieces, the second Black.
func (d DiceRoll) Face(i int) Piece {
	color := White
	if i == 1 {
		color = Black
	}
	return NewPiece(d.Kind(i), color)
}

// Roller produces dice rolls.
type Roller interface {
	Roll() DiceRoll
}

// DiceRoller rolls independent uniform dice from its own source.
// It is not safe for concurrent use.
type DiceRoller struct {
	rng *rand.Rand
}

// NewDiceRoller returns a roller seeded from the runtime's random source.
func NewDiceRoller() *DiceRoller {
	return &DiceRoller{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededDiceRoller returns a deterministic roller.
func NewSeededDiceRoller(seed uint64) *DiceRoller {
	return &DiceRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *DiceRoller) Roll() DiceRoll {
	var d DiceRoll
	for i := range d.Values {
		d.Values[i] = r.rng.IntN(DiceFaces)
	}
	return d
}
