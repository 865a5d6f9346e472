package whack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/burrowlabs/whack-engine/internal/domain"
)

func TestSlotRoller_DistinctSlotsInRange(t *testing.T) {
	roller := NewSlotRoller()

	for i := 0; i < 200; i++ {
		normal, golden, err := roller.Roll()
		assert.NoError(t, err)
		assert.NotEqual(t, normal, golden)
		assert.GreaterOrEqual(t, normal, domain.SlotMin)
		assert.LessOrEqual(t, normal, domain.SlotMax)
		assert.GreaterOrEqual(t, golden, domain.SlotMin)
		assert.LessOrEqual(t, golden, domain.SlotMax)
	}
}

func TestSlotRoller_BothOrderingsOccur(t *testing.T) {
	roller := NewSlotRoller()

	sawNormalLower, sawGoldenLower := false, false
	for i := 0; i < 500 && !(sawNormalLower && sawGoldenLower); i++ {
		normal, golden, err := roller.Roll()
		assert.NoError(t, err)
		if normal < golden {
			sawNormalLower = true
		} else {
			sawGoldenLower = true
		}
	}
	assert.True(t, sawNormalLower)
	assert.True(t, sawGoldenLower)
}
