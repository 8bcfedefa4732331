package multiplayer

// Contestant is one seat of a duel. engine.Session satisfies it.
type Contestant interface {
	Score() int
	GameOver() bool
}

// MatchResult contains the outcome of a completed match.
type MatchResult struct {
	MatchID MatchID
	Mode    MatchMode
	Reason  MatchEndReason
	Winner  PlayerID // 0 on a draw
	Score1  int
	Score2  int
	Ticks   uint64
}

// MatchResultSaver is an interface for saving match results.
// This allows games to record results without depending on the storage package.
type MatchResultSaver interface {
	SaveMatchResult(result MatchResultData) error
}

// MatchResultData contains match result data for persistence.
type MatchResultData struct {
	MatchID      string
	GameID       string
	Mode         string
	Score1       int
	Score2       int
	Winner       string // "P1", "P2" or empty on a draw
	EndReason    string
	DurationSecs int
}

// Data converts the result for persistence. tickRate turns ticks into seconds.
func (r MatchResult) Data(gameID string, tickRate int) MatchResultData {
	d := MatchResultData{
		MatchID:   string(r.MatchID),
		GameID:    gameID,
		Mode:      r.Mode.String(),
		Score1:    r.Score1,
		Score2:    r.Score2,
		EndReason: r.Reason.String(),
	}
	if r.Winner != 0 {
		d.Winner = r.Winner.String()
	}
	if tickRate > 0 {
		d.DurationSecs = int(r.Ticks / uint64(tickRate))
	}
	return d
}

// Duel tracks two independent sessions playing side by side. The match is
// over when both seats have ended or one seat forfeits; the higher score
// wins.
type Duel struct {
	match   *Match
	seats   [2]Contestant
	ticks   uint64
	forfeit PlayerID
}

// NewDuel starts a match between p1 and p2.
func NewDuel(mode MatchMode, p1, p2 Contestant) *Duel {
	return &Duel{
		match: NewMatch(NewMatchID(), mode),
		seats: [2]Contestant{p1, p2},
	}
}

// Match returns the match metadata.
func (d *Duel) Match() *Match {
	return d.match
}

// Seat returns the contestant for a player, or nil for an unknown ID.
func (d *Duel) Seat(id PlayerID) Contestant {
	switch id {
	case Player1:
		return d.seats[0]
	case Player2:
		return d.seats[1]
	default:
		return nil
	}
}

// Tick counts one simulation step while the match runs.
func (d *Duel) Tick() {
	if !d.Over() {
		d.ticks++
	}
}

// Ticks returns how many steps the match has run.
func (d *Duel) Ticks() uint64 {
	return d.ticks
}

// Forfeit ends the match with id losing. Ignored once the match is over.
func (d *Duel) Forfeit(id PlayerID) {
	if d.Over() || d.Seat(id) == nil {
		return
	}
	d.forfeit = id
}

// Over reports whether the match has ended.
func (d *Duel) Over() bool {
	return d.forfeit != 0 || (d.seats[0].GameOver() && d.seats[1].GameOver())
}

// Leader returns the seat currently ahead on score, or 0 when level.
func (d *Duel) Leader() PlayerID {
	s1, s2 := d.seats[0].Score(), d.seats[1].Score()
	switch {
	case s1 > s2:
		return Player1
	case s2 > s1:
		return Player2
	default:
		return 0
	}
}

// Winner returns the winning seat once the match is over, 0 before that or
// on a draw.
func (d *Duel) Winner() PlayerID {
	switch {
	case d.forfeit == Player1:
		return Player2
	case d.forfeit == Player2:
		return Player1
	case !d.Over():
		return 0
	default:
		return d.Leader()
	}
}

// Result returns the match outcome so far.
func (d *Duel) Result() MatchResult {
	reason := MatchEndReasonNone
	switch {
	case d.forfeit != 0:
		reason = MatchEndReasonForfeit
	case d.Over():
		reason = MatchEndReasonCompleted
	}
	return MatchResult{
		MatchID: d.match.ID(),
		Mode:    d.match.Mode(),
		Reason:  reason,
		Winner:  d.Winner(),
		Score1:  d.seats[0].Score(),
		Score2:  d.seats[1].Score(),
		Ticks:   d.ticks,
	}
}
