package domain

import "time"

// Well-known pool identifiers
const (
	PoolWhack = "whack"
	PoolFee   = "fee"
)

// DefaultMaxBetBps caps a single bet at 10% of the pool balance
const DefaultMaxBetBps = 1000

// TreasuryPool is a shared reserve of funds sessions settle against
type TreasuryPool struct {
	PoolID    string    `json:"pool_id"`
	Enabled   bool      `json:"enabled"`
	Balance   int64     `json:"balance"`
	MaxBetBps int       `json:"max_bet_bps"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MaxBet derives the largest permitted bet from the pool's current balance
func (p *TreasuryPool) MaxBet() int64 {
	if p.MaxBetBps <= 0 {
		return 0
	}
	return p.Balance * int64(p.MaxBetBps) / 10000
}
