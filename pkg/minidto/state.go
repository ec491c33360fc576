// Package minidto holds the wire shapes of a minichess session.
package minidto

// Cell is a board coordinate, row 0 on top.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Selection is the picked origin and its legal destinations.
type Selection struct {
	From  Cell   `json:"from"`
	Moves []Cell `json:"moves"`
}

// Dice pairs raw die values with the piece kinds they show.
type Dice struct {
	Values []int    `json:"values"`
	Kinds  []string `json:"kinds"`
}

// SessionState is a rendered view of one game.
type SessionState struct {
	GameID     string     `json:"game_id"`
	SideToMove string     `json:"side_to_move"`
	Phase      string     `json:"phase"`
	Turn       int        `json:"turn"`
	Board      []string   `json:"board"`
	Selection  *Selection `json:"selection,omitempty"`
	Dice       Dice       `json:"dice"`
	Checkmate  bool       `json:"checkmate"`
}
