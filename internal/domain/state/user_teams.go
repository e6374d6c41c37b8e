package state

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UserTeams is the user_teams table. It behaves like
// map[user]map[match][]player but additionally remembers the order in which
// users first appeared, and keeps that order across a marshal/unmarshal round
// trip. Ranking ties are broken by this order, so it is part of the persisted
// contract, not a cosmetic detail.
type UserTeams struct {
	order   []string
	rosters map[string]map[string][]string
}

func NewUserTeams() *UserTeams {
	return &UserTeams{
		rosters: make(map[string]map[string][]string),
	}
}

// Users returns user IDs in first-appearance order.
func (u *UserTeams) Users() []string {
	return append([]string(nil), u.order...)
}

func (u *UserTeams) Len() int {
	return len(u.order)
}

// ByUser returns the user's rosters keyed by match. The inner slices are the
// live backing arrays; callers that hand data out must copy.
func (u *UserTeams) ByUser(userID string) (map[string][]string, bool) {
	rosters, ok := u.rosters[userID]
	return rosters, ok
}

// Roster returns the ordered picks for one (user, match) pair.
func (u *UserTeams) Roster(userID, matchName string) ([]string, bool) {
	rosters, ok := u.rosters[userID]
	if !ok {
		return nil, false
	}
	players, ok := rosters[matchName]
	return players, ok
}

// Set replaces the (user, match) roster, registering the user at the end of
// the appearance order if unseen.
func (u *UserTeams) Set(userID, matchName string, players []string) {
	rosters, ok := u.rosters[userID]
	if !ok {
		rosters = make(map[string][]string)
		u.rosters[userID] = rosters
		u.order = append(u.order, userID)
	}
	rosters[matchName] = players
}

// Delete removes the (user, match) entry. The user keeps their appearance
// slot even when no rosters remain, matching historical datasets.
func (u *UserTeams) Delete(userID, matchName string) {
	rosters, ok := u.rosters[userID]
	if !ok {
		return
	}
	delete(rosters, matchName)
}

// Clear drops every user and roster.
func (u *UserTeams) Clear() {
	u.order = nil
	u.rosters = make(map[string]map[string][]string)
}

// MarshalJSON emits users as object keys in first-appearance order. sonic
// and encoding/json both honor this for the enclosing document.
func (u *UserTeams) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, userID := range u.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(userID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(u.rosters[userID])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON walks the object token by token so the key order of the
// source document is captured, which map decoding would lose.
func (u *UserTeams) UnmarshalJSON(data []byte) error {
	u.order = nil
	u.rosters = make(map[string]map[string][]string)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("user_teams: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		userID, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("user_teams: expected string key, got %v", keyTok)
		}

		var rosters map[string][]string
		if err := dec.Decode(&rosters); err != nil {
			return fmt.Errorf("user_teams: decode rosters for %q: %w", userID, err)
		}
		if rosters == nil {
			rosters = make(map[string][]string)
		}
		if _, seen := u.rosters[userID]; !seen {
			u.order = append(u.order, userID)
		}
		u.rosters[userID] = rosters
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
