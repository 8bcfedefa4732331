// Package multiplayer provides match bookkeeping for two-seat modes.
// Both seats run in the same process: Player1 is the local human and
// Player2 is the autopilot.
package multiplayer

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// PlayerID is an alias to core.PlayerID for convenience.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// MatchID uniquely identifies a game match.
type MatchID string

// NewMatchID returns a fresh random match identifier.
func NewMatchID() MatchID {
	return MatchID(uuid.NewString())
}

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single-player game.
	MatchModeSolo MatchMode = iota

	// MatchModeVsCPU is the human against the autopilot.
	MatchModeVsCPU

	// MatchModeCPUvsCPU pits two autopilots against each other.
	MatchModeCPUvsCPU
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeVsCPU:
		return "vs CPU"
	case MatchModeCPUvsCPU:
		return "CPU vs CPU"
	default:
		return "Unknown"
	}
}

// Match holds the identity of one two-seat match.
type Match struct {
	id   MatchID
	mode MatchMode
}

// NewMatch creates a new match with the given parameters.
func NewMatch(id MatchID, mode MatchMode) *Match {
	return &Match{
		id:   id,
		mode: mode,
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// MatchEndReason describes why a match ended.
type MatchEndReason int

const (
	MatchEndReasonNone      MatchEndReason = iota // Still running
	MatchEndReasonCompleted                       // Both boards topped out
	MatchEndReasonForfeit                         // A player left early
)

func (r MatchEndReason) String() string {
	switch r {
	case MatchEndReasonNone:
		return "In progress"
	case MatchEndReasonCompleted:
		return "completed"
	case MatchEndReasonForfeit:
		return "forfeit"
	default:
		return "unknown"
	}
}
