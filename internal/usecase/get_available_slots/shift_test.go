package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SPA-AvailabilityService/internal/domain"
	"github.com/m04kA/SPA-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SPA-AvailabilityService/pkg/types"
)

func ts(s string) types.TimeString {
	return types.TimeString(s)
}

func tsPtr(s string) *types.TimeString {
	t := types.TimeString(s)
	return &t
}

// Понедельник
var testDate = time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

var testSalonOpen = domain.Interval{Start: ts("09:00"), End: ts("19:00")}

func recurringRule(staffID int64, weekday int, start, end *types.TimeString) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		StaffID:   staffID,
		RuleType:  domain.RuleRecurring,
		Weekday:   ptr.Ptr(weekday),
		StartTime: start,
		EndTime:   end,
	}
}

func specificRule(staffID int64, date time.Time, start, end *types.TimeString) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		StaffID:      staffID,
		RuleType:     domain.RuleSpecificDate,
		SpecificDate: &date,
		StartTime:    start,
		EndTime:      end,
	}
}

func TestResolveShift_RecurringRule(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		recurringRule(1, 1, tsPtr("10:00"), tsPtr("18:00")), // Понедельник
	}

	shift := resolveShift(rules, 1, testDate, testSalonOpen)

	assert.Equal(t, ts("10:00"), shift.Start)
	assert.Equal(t, ts("18:00"), shift.End)
}

func TestResolveShift_SpecificDateOverridesRecurring(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		recurringRule(1, 1, tsPtr("09:00"), tsPtr("19:00")),
		specificRule(1, testDate, tsPtr("12:00"), tsPtr("15:00")),
	}

	shift := resolveShift(rules, 1, testDate, testSalonOpen)

	assert.Equal(t, ts("12:00"), shift.Start)
	assert.Equal(t, ts("15:00"), shift.End)
}

func TestResolveShift_NoRules_ZeroWidthShift(t *testing.T) {
	shift := resolveShift(nil, 1, testDate, testSalonOpen)

	assert.True(t, shift.IsZeroWidth())
	assert.Equal(t, testSalonOpen.Start, shift.Start)
}

func TestResolveShift_RuleForDifferentWeekday_Ignored(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		recurringRule(1, 2, tsPtr("10:00"), tsPtr("18:00")), // Вторник
	}

	shift := resolveShift(rules, 1, testDate, testSalonOpen)

	assert.True(t, shift.IsZeroWidth())
}

func TestResolveShift_RuleForDifferentStaff_Ignored(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		recurringRule(2, 1, tsPtr("10:00"), tsPtr("18:00")),
	}

	shift := resolveShift(rules, 1, testDate, testSalonOpen)

	assert.True(t, shift.IsZeroWidth())
}

func TestResolveShift_NilBounds_FallBackToSalonHours(t *testing.T) {
	tests := []struct {
		name          string
		rule          *domain.AvailabilityRule
		wantStart     types.TimeString
		wantEnd       types.TimeString
	}{
		{
			name:      "nil start",
			rule:      recurringRule(1, 1, nil, tsPtr("15:00")),
			wantStart: ts("09:00"),
			wantEnd:   ts("15:00"),
		},
		{
			name:      "nil end",
			rule:      recurringRule(1, 1, tsPtr("12:00"), nil),
			wantStart: ts("12:00"),
			wantEnd:   ts("19:00"),
		},
		{
			name:      "both nil",
			rule:      recurringRule(1, 1, nil, nil),
			wantStart: ts("09:00"),
			wantEnd:   ts("19:00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shift := resolveShift([]*domain.AvailabilityRule{tt.rule}, 1, testDate, testSalonOpen)

			assert.Equal(t, tt.wantStart, shift.Start)
			assert.Equal(t, tt.wantEnd, shift.End)
		})
	}
}

func TestResolveShift_SpecificDateZeroWidth_MeansDayOff(t *testing.T) {
	// Разовое правило с совпадающими границами - выходной, перекрывающий еженедельную смену
	rules := []*domain.AvailabilityRule{
		recurringRule(1, 1, tsPtr("09:00"), tsPtr("19:00")),
		specificRule(1, testDate, tsPtr("09:00"), tsPtr("09:00")),
	}

	shift := resolveShift(rules, 1, testDate, testSalonOpen)

	assert.True(t, shift.IsZeroWidth())
}

func TestResolveShift_InvertedBounds_TreatedAsNoShift(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		recurringRule(1, 1, tsPtr("18:00"), tsPtr("10:00")),
	}

	shift := resolveShift(rules, 1, testDate, testSalonOpen)

	assert.True(t, shift.IsZeroWidth())
}
