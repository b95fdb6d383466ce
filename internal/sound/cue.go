// Package sound plays short table cues. Audio files are loaded from
// assets/sounds at startup; a missing directory just means silence.
package sound

// Cue names a table event with a sound attached. Each maps to a file
// of the same base name under assets/sounds.
type Cue string

const (
	CueDeal      Cue = "deal"
	CueFlip      Cue = "flip"
	CueWin       Cue = "win"
	CueLose      Cue = "lose"
	CuePush      Cue = "push"
	CueBlackjack Cue = "blackjack"
	CueShuffle   Cue = "shuffle"
)
