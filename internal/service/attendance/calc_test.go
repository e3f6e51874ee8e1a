package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHoursFromContainers(t *testing.T) {
	// 15 containers against a norm of 10 is a day and a half.
	assert.Equal(t, 12.0, HoursFromContainers(15, 10))
	assert.Equal(t, 8.0, HoursFromContainers(10, 10))
	assert.Equal(t, 4.0, HoursFromContainers(5, 10))
	assert.Equal(t, 0.0, HoursFromContainers(0, 10))
}

func TestHoursFromContainers_InvalidNorm(t *testing.T) {
	assert.Equal(t, 0.0, HoursFromContainers(10, 0))
	assert.Equal(t, 0.0, HoursFromContainers(10, -3))
}

func TestHoursFromContainers_Rounding(t *testing.T) {
	// 7 / 12 * 8 = 4.6666... rounds to two decimals.
	assert.Equal(t, 4.67, HoursFromContainers(7, 12))
}

func TestSplitHours_RegularDay(t *testing.T) {
	w := SplitHours(7)

	assert.Equal(t, 7.0, w.Total)
	assert.Equal(t, 7.0, w.Window100)
	assert.Equal(t, 0.0, w.Window125)
	assert.Equal(t, 0.0, w.Window150)
}

func TestSplitHours_WithOvertime125(t *testing.T) {
	w := SplitHours(9)

	assert.Equal(t, 9.0, w.Total)
	assert.Equal(t, 8.0, w.Window100)
	assert.Equal(t, 1.0, w.Window125)
	assert.Equal(t, 0.0, w.Window150)
}

func TestSplitHours_WithOvertime150(t *testing.T) {
	w := SplitHours(11.5)

	assert.Equal(t, 11.5, w.Total)
	assert.Equal(t, 8.0, w.Window100)
	assert.Equal(t, 2.0, w.Window125)
	assert.Equal(t, 1.5, w.Window150)
}

func TestSplitHours_ExactBoundaries(t *testing.T) {
	w := SplitHours(8)
	assert.Equal(t, 8.0, w.Window100)
	assert.Equal(t, 0.0, w.Window125)

	w = SplitHours(10)
	assert.Equal(t, 8.0, w.Window100)
	assert.Equal(t, 2.0, w.Window125)
	assert.Equal(t, 0.0, w.Window150)
}

func TestSplitHours_ZeroAndNegative(t *testing.T) {
	assert.Equal(t, HourWindows{}, SplitHours(0))
	assert.Equal(t, HourWindows{}, SplitHours(-2))
}

// The windows must always sum back to the total, including for fractional
// totals where naive per-window rounding would drift.
func TestSplitHours_WindowsSumToTotal(t *testing.T) {
	for _, hours := range []float64{0.01, 3.33, 7.99, 8.01, 9.67, 10.01, 11.11, 12.345, 14.5} {
		w := SplitHours(hours)
		assert.InDelta(t, w.Total, w.Window100+w.Window125+w.Window150, 1e-9, "hours=%v", hours)
	}
}

func TestDailyWage(t *testing.T) {
	rate := decimal.NewFromInt(30)

	// 8h regular: 8 * 30 = 240.
	wage := DailyWage(rate, SplitHours(8))
	assert.True(t, wage.Equal(decimal.NewFromInt(240)), "got %s", wage)

	// 11h: 8*30 + 2*37.50 + 1*45 = 360.
	wage = DailyWage(rate, SplitHours(11))
	assert.True(t, wage.Equal(decimal.NewFromInt(360)), "got %s", wage)
}

func TestDailyWage_RoundsToTwoDecimals(t *testing.T) {
	rate, err := decimal.NewFromString("33.333")
	assert.NoError(t, err)

	wage := DailyWage(rate, SplitHours(9))
	assert.Equal(t, "308.33", wage.StringFixed(2))
	assert.Equal(t, int32(2), -wage.Exponent())
}
