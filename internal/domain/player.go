package domain

import "time"

// PlayerIdentity is the external identity a caller presents when starting
// a session. The chat layer owns authentication; the engine only records it.
type PlayerIdentity struct {
	PlayerID  string `json:"player_id"`
	Handle    string `json:"handle,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	IsBot     bool   `json:"is_bot,omitempty"`
}

// PlayerBalance holds a player's spendable balance. The balance is only
// ever mutated through a conditional decrement or an unconditional credit.
type PlayerBalance struct {
	PlayerID    string    `json:"player_id"`
	Handle      string    `json:"handle,omitempty"`
	FirstName   string    `json:"first_name,omitempty"`
	IsBot       bool      `json:"is_bot"`
	Balance     int64     `json:"balance"`
	Blacklisted bool      `json:"blacklisted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
