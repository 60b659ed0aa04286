package matches

// MatchCreatedEvent is published when a remote match has been accepted and
// its player key issued.
type MatchCreatedEvent struct {
	MatchID  string `json:"matchID"`
	Opponent string `json:"opponent"`
	MapName  string `json:"mapName"`
}

// MatchFinishedEvent is published once the outcome of a match is known.
type MatchFinishedEvent struct {
	MatchID string `json:"matchID"`
	// 1-based player number, 0 when there is no winner.
	Winner uint32 `json:"winner"`
	// Per-player flag: true when that player timed out or crashed at least
	// once during the match.
	PlayerErrors []bool `json:"playerErrors"`
}
