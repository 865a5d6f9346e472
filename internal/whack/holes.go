package whack

import (
	"fmt"

	"github.com/burrowlabs/whack-engine/internal/domain"
	"github.com/burrowlabs/whack-engine/internal/utils"
)

// SlotRoller hides the prize slots for a new session. Injectable so tests
// can fix the board.
type SlotRoller interface {
	Roll() (normalSlot, goldenSlot int, err error)
}

// cryptoRoller draws slots from crypto/rand
type cryptoRoller struct{}

// NewSlotRoller returns the production roller
func NewSlotRoller() SlotRoller {
	return cryptoRoller{}
}

// Roll picks two distinct slots and assigns normal vs golden 50/50
func (cryptoRoller) Roll() (int, int, error) {
	a, err := utils.SecureRandomInt(domain.SlotMin, domain.SlotMax)
	if err != nil {
		return 0, 0, fmt.Errorf("roll slots: %w", err)
	}
	b := a
	for b == a {
		b, err = utils.SecureRandomInt(domain.SlotMin, domain.SlotMax)
		if err != nil {
			return 0, 0, fmt.Errorf("roll slots: %w", err)
		}
	}
	coin, err := utils.SecureRandomInt(0, 1)
	if err != nil {
		return 0, 0, fmt.Errorf("roll slots: %w", err)
	}
	if coin == 0 {
		return a, b, nil
	}
	return b, a, nil
}
