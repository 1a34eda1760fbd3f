package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const requestTimeout = 5 * time.Second

// HTTPStore talks to the REST persistence API.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

func NewHTTPStore(baseURL string) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

func (s *HTTPStore) CreateMatch(ctx context.Context, player1, player2 int64) (Match, error) {
	body := map[string]int64{
		"player_1": player1,
		"player_2": player2,
	}
	var match Match
	if err := s.post(ctx, "/matches/", body, &match); err != nil {
		return Match{}, fmt.Errorf("create match: %w", err)
	}
	return match, nil
}

func (s *HTTPStore) RecordGoal(ctx context.Context, matchID, scorerID, durationSeconds int64) (Goal, error) {
	body := map[string]int64{
		"player_id":        scorerID,
		"duration_seconds": durationSeconds,
	}
	var goal Goal
	path := fmt.Sprintf("/matches/%d/goals/", matchID)
	if err := s.post(ctx, path, body, &goal); err != nil {
		return Goal{}, fmt.Errorf("record goal: %w", err)
	}
	return goal, nil
}

func (s *HTTPStore) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
