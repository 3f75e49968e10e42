package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessmatch-go/internal/chess"
)

// JSONMatch represents a match snapshot in JSON format.
type JSONMatch struct {
	Turn          int         `json:"turn"`
	CurrentPlayer string      `json:"currentPlayer"` // "white" or "black"
	Check         bool        `json:"check"`
	CheckMate     bool        `json:"checkMate"`
	Pieces        []JSONPiece `json:"pieces"`
	Captured      []JSONPiece `json:"captured,omitempty"`
	Promoted      *JSONPiece  `json:"promoted,omitempty"`
	Moves         []string    `json:"moves,omitempty"` // Highlighted squares
}

// JSONPiece represents a piece in JSON format.
type JSONPiece struct {
	Square    string `json:"square"`
	Kind      string `json:"kind"`
	Colour    string `json:"colour"`
	MoveCount int    `json:"moveCount"`
}

// MatchToJSON converts match state to JSON format. Pieces are listed rank 8
// first, file a first.
func MatchToJSON(view MatchView, highlight *chess.MoveMatrix) *JSONMatch {
	jm := &JSONMatch{
		Turn:          view.Turn(),
		CurrentPlayer: colourName(view.CurrentPlayer()),
		Check:         view.Check(),
		CheckMate:     view.CheckMate(),
		Pieces:        make([]JSONPiece, 0, 32),
	}

	grid := view.Pieces()
	for row := range grid {
		for _, p := range grid[row] {
			if p != nil {
				jm.Pieces = append(jm.Pieces, pieceToJSON(p))
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range view.Captured(colour) {
			jm.Captured = append(jm.Captured, pieceToJSON(p))
		}
	}

	if p := view.Promoted(); p != nil {
		jp := pieceToJSON(p)
		jm.Promoted = &jp
	}

	if highlight != nil {
		for _, sq := range highlight.Squares() {
			jm.Moves = append(jm.Moves, sq.String())
		}
	}

	return jm
}

// OutputMatchJSON writes a match snapshot as indented JSON.
func OutputMatchJSON(w io.Writer, view MatchView, highlight *chess.MoveMatrix) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(MatchToJSON(view, highlight))
}

func pieceToJSON(p *chess.Piece) JSONPiece {
	return JSONPiece{
		Square:    p.Pos.String(),
		Kind:      p.Kind.String(),
		Colour:    colourName(p.Colour),
		MoveCount: p.MoveCount,
	}
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

func writeJSONMessage(w io.Writer, msg string) error {
	return json.NewEncoder(w).Encode(struct {
		Message string `json:"message"`
	}{msg})
}
