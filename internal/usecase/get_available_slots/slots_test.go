package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
)

func TestGenerateCandidates_Basic(t *testing.T) {
	open := domain.Interval{Start: ts("09:00"), End: ts("12:00")}

	candidates, err := generateCandidates(open, 60, 60)

	require.NoError(t, err)
	require.Len(t, candidates, 3)
	assert.Equal(t, ts("09:00"), candidates[0].Start)
	assert.Equal(t, ts("10:00"), candidates[0].End)
	assert.Equal(t, ts("11:00"), candidates[2].Start)
	assert.Equal(t, ts("12:00"), candidates[2].End)
}

func TestGenerateCandidates_LastSlotFitsExactly(t *testing.T) {
	// Кандидат, заканчивающийся ровно в закрытие, допустим; следующий - уже нет
	open := domain.Interval{Start: ts("09:00"), End: ts("10:30")}

	candidates, err := generateCandidates(open, 60, 30)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, ts("09:30"), candidates[1].Start)
	assert.Equal(t, ts("10:30"), candidates[1].End)
}

func TestGenerateCandidates_StepSmallerThanDuration(t *testing.T) {
	open := domain.Interval{Start: ts("09:00"), End: ts("10:00")}

	candidates, err := generateCandidates(open, 45, 15)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, ts("09:00"), candidates[0].Start)
	assert.Equal(t, ts("09:15"), candidates[1].Start)
}

func TestGenerateCandidates_ServiceLongerThanDay(t *testing.T) {
	open := domain.Interval{Start: ts("09:00"), End: ts("10:00")}

	candidates, err := generateCandidates(open, 120, 15)

	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGenerateCandidates_ZeroWidthOpen(t *testing.T) {
	open := domain.Interval{Start: ts("09:00"), End: ts("09:00")}

	candidates, err := generateCandidates(open, 30, 15)

	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGenerateCandidates_MidnightClose(t *testing.T) {
	// "24:00" - допустимая граница закрытия
	open := domain.Interval{Start: ts("23:00"), End: ts("24:00")}

	candidates, err := generateCandidates(open, 30, 30)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, ts("24:00"), candidates[1].End)
}

func TestGenerateCandidates_Deterministic(t *testing.T) {
	open := domain.Interval{Start: ts("09:00"), End: ts("19:00")}

	first, err := generateCandidates(open, 60, 15)
	require.NoError(t, err)

	second, err := generateCandidates(open, 60, 15)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// Начала строго возрастают
	for i := 1; i < len(first); i++ {
		assert.True(t, first[i-1].Start.IsBefore(first[i].Start))
	}
}
