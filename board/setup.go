package board

// StandardPlacement has Black on ranks 1 and 2 and White on ranks 7 and 8,
// so White advances toward rank 1.
const StandardPlacement = "RNBQKBNR/PPPPPPPP/8/8/8/8/pppppppp/rnbqkbnr"

// NewStandardSetup returns a board holding both full armies.
func NewStandardSetup() *Board {
	b, _ := NewBoard(WithPlacement(StandardPlacement))
	return b
}
