package game

// DecodeError reports input that does not conform to the game schema: an
// unknown enumerated value, a missing field, a duplicate player name, or a
// quest referencing a participant outside the player set. It is raised at
// ingestion and at load-time decoding and is never recovered automatically.
type DecodeError struct {
	Detail string
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return "decode: " + e.Detail
}
