package domain

import "time"

// ConfigID is the singleton game-config row key
const ConfigID = "global"

// GameConfig is the runtime game configuration: wagering limits, the
// rails kill switch, and the presentation settings the bot front end reads.
type GameConfig struct {
	ConfigID string `json:"config_id"`

	// Wagering
	MinBet      int64 `json:"min_bet"`
	RailsPaused bool  `json:"rails_paused"`

	// Presentation (consumed by the chat layer, stored here)
	Caption            string  `json:"caption"`
	ImageURL           string  `json:"image_url,omitempty"`
	BannerWinNormalURL string  `json:"banner_win_normal_url,omitempty"`
	BannerWinGoldenURL string  `json:"banner_win_golden_url,omitempty"`
	BannerWinBothURL   string  `json:"banner_win_both_url,omitempty"`
	BannerLoseURL      string  `json:"banner_lose_url,omitempty"`
	BannerTauntURL     string  `json:"banner_taunt_url,omitempty"`
	QuickBets          []int64 `json:"quick_bets"`
	DMOnly             bool    `json:"dm_only"`
	AutoDelete         bool    `json:"auto_delete"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GameConfigUpdate is a partial update; nil fields are left untouched
type GameConfigUpdate struct {
	MinBet             *int64   `json:"min_bet,omitempty"`
	Caption            *string  `json:"caption,omitempty"`
	ImageURL           *string  `json:"image_url,omitempty"`
	BannerWinNormalURL *string  `json:"banner_win_normal_url,omitempty"`
	BannerWinGoldenURL *string  `json:"banner_win_golden_url,omitempty"`
	BannerWinBothURL   *string  `json:"banner_win_both_url,omitempty"`
	BannerLoseURL      *string  `json:"banner_lose_url,omitempty"`
	BannerTauntURL     *string  `json:"banner_taunt_url,omitempty"`
	QuickBets          []int64  `json:"quick_bets,omitempty"`
	DMOnly             *bool    `json:"dm_only,omitempty"`
	AutoDelete         *bool    `json:"auto_delete,omitempty"`
}

// ChatState is the per-chat repost bookkeeping the (out-of-scope) message
// scheduler reads to space reposts.
type ChatState struct {
	ChatID           string     `json:"chat_id"`
	ShillMessageID   int64      `json:"shill_message_id,omitempty"`
	ShillIntervalSec int        `json:"shill_interval_sec"`
	LastShillAt      *time.Time `json:"last_shill_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
