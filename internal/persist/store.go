// Package persist records matches and goals against an external
// persistence service. The simulation never depends on the outcome:
// failures are logged and gameplay continues.
package persist

import "context"

// Match is the persistence service's record of a created match.
type Match struct {
	ID        int64  `json:"m_id"`
	Player1   int64  `json:"player_1"`
	Player2   int64  `json:"player_2"`
	CreatedAt string `json:"created_at"`
}

// Goal is the record of a single scored point.
type Goal struct {
	ID       int64 `json:"g_id"`
	MatchID  int64 `json:"match_id"`
	PlayerID int64 `json:"player_id"`
	Duration int64 `json:"duration_seconds"`
}

// Store is the external persistence collaborator. Duplicate suppression
// is the service's responsibility; callers do not retry RecordGoal.
type Store interface {
	CreateMatch(ctx context.Context, player1, player2 int64) (Match, error)
	RecordGoal(ctx context.Context, matchID, scorerID int64, durationSeconds int64) (Goal, error)
}

// NopStore discards everything. Used in demo mode and when no
// persistence backend is configured.
type NopStore struct{}

func (NopStore) CreateMatch(ctx context.Context, player1, player2 int64) (Match, error) {
	return Match{}, nil
}

func (NopStore) RecordGoal(ctx context.Context, matchID, scorerID int64, durationSeconds int64) (Goal, error) {
	return Goal{}, nil
}
