package challengesfetcher

import (
	"bytes"
	"encoding/json"
)

// Full challenge data for one player.
type PlayerChallenges struct {
	TotalPoints    ChallengePoints  `json:"totalPoints"`
	CategoryPoints CategoryPoints   `json:"categoryPoints"`
	Challenges     []ChallengeEntry `json:"challenges"`
}

// Aggregate points with the current level.
type ChallengePoints struct {
	Level   string  `json:"level"`
	Current float64 `json:"current"`
	Max     float64 `json:"max"`
}

// A single challenge progress entry.
type ChallengeEntry struct {
	ChallengeId int64   `json:"challengeId"`
	Percentile  float64 `json:"percentile"`
	Level       string  `json:"level"`
	Value       float64 `json:"value"`
}

// Static configuration of a challenge.
type ChallengeConfig struct {
	Id             int64                        `json:"id"`
	LocalizedNames map[string]map[string]string `json:"localizedNames"`
	Tags           []string                     `json:"tags"`
	Thresholds     map[string]float64           `json:"thresholds"`
}

// CategoryPoints normalizes the category mapping at the JSON boundary.
// The API serves either plain numbers or nested records with a current/level
// field; downstream code only ever sees one numeric shape. Key order from the
// payload is preserved so tie-breaks stay deterministic.
type CategoryPoints struct {
	Order  []string
	Points map[string]float64
}

func (cp *CategoryPoints) UnmarshalJSON(b []byte) error {
	cp.Order = nil
	cp.Points = make(map[string]float64)

	decoder := json.NewDecoder(bytes.NewReader(b))

	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		// Null or a non-object shape degrades to an empty mapping.
		return nil
	}

	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}
		key := keyToken.(string)

		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			return err
		}

		value, ok := normalizePoints(raw)
		if !ok {
			// Malformed values drop only their own category.
			continue
		}

		cp.Order = append(cp.Order, key)
		cp.Points[key] = value
	}

	return nil
}

// normalizePoints resolves the number-or-record union into a single float.
func normalizePoints(raw json.RawMessage) (float64, bool) {
	var number float64
	if err := json.Unmarshal(raw, &number); err == nil {
		return number, true
	}

	var record struct {
		Current *float64 `json:"current"`
		Level   *float64 `json:"level"`
	}
	if err := json.Unmarshal(raw, &record); err != nil {
		return 0, false
	}

	if record.Current != nil {
		return *record.Current, true
	}
	if record.Level != nil {
		return *record.Level, true
	}

	return 0, false
}
