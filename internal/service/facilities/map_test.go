package facilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func space(id int64, code string, state domain.SpaceState) *domain.Space {
	return &domain.Space{
		ID:         id,
		FacilityID: 1,
		Code:       code,
		Type:       domain.SpaceTypeCar,
		State:      state,
	}
}

func TestBuildRows_GroupsByLetterPrefix(t *testing.T) {
	spaces := []*domain.Space{
		space(1, "B2", domain.SpaceStateFree),
		space(2, "A10", domain.SpaceStateOccupied),
		space(3, "A2", domain.SpaceStateFree),
		space(4, "B1", domain.SpaceStateReserved),
	}

	rows := buildRows(spaces)

	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Row)
	assert.Equal(t, "B", rows[1].Row)

	require.Len(t, rows[0].Spaces, 2)
	assert.Equal(t, "A2", rows[0].Spaces[0].Code)
	assert.Equal(t, "A10", rows[0].Spaces[1].Code)

	require.Len(t, rows[1].Spaces, 2)
	assert.Equal(t, "B1", rows[1].Spaces[0].Code)
	assert.Equal(t, "B2", rows[1].Spaces[1].Code)
}

func TestBuildRows_NumericSortNotLexicographic(t *testing.T) {
	spaces := []*domain.Space{
		space(1, "A10", domain.SpaceStateFree),
		space(2, "A9", domain.SpaceStateFree),
		space(3, "A100", domain.SpaceStateFree),
	}

	rows := buildRows(spaces)

	require.Len(t, rows, 1)
	assert.Equal(t, "A9", rows[0].Spaces[0].Code)
	assert.Equal(t, "A10", rows[0].Spaces[1].Code)
	assert.Equal(t, "A100", rows[0].Spaces[2].Code)
}

func TestBuildRows_UnparseableCodesGoToUnknownRowLast(t *testing.T) {
	spaces := []*domain.Space{
		space(1, "42", domain.SpaceStateFree),
		space(2, "Z1", domain.SpaceStateFree),
		space(3, "A", domain.SpaceStateFree),
		space(4, "A-3", domain.SpaceStateFree),
	}

	rows := buildRows(spaces)

	require.Len(t, rows, 2)
	assert.Equal(t, "Z", rows[0].Row)
	assert.Equal(t, "unknown", rows[1].Row)
	assert.Len(t, rows[1].Spaces, 3)
}

func TestBuildRows_MultiLetterPrefix(t *testing.T) {
	spaces := []*domain.Space{
		space(1, "AB5", domain.SpaceStateFree),
		space(2, "AB1", domain.SpaceStateOutOfService),
	}

	rows := buildRows(spaces)

	require.Len(t, rows, 1)
	assert.Equal(t, "AB", rows[0].Row)
	assert.Equal(t, "AB1", rows[0].Spaces[0].Code)
	assert.Equal(t, "out_of_service", rows[0].Spaces[0].State)
}

func TestBuildRows_EmptyFacility(t *testing.T) {
	rows := buildRows(nil)

	assert.Empty(t, rows)
}
