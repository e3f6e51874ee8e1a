package attendance

import (
	"math"

	"github.com/shopspring/decimal"
)

// Overtime thresholds in hours under Israeli agricultural pay rules: the
// first 8 hours pay 100%, the next 2 pay 125%, anything beyond pays 150%.
const (
	regularHoursLimit  = 8.0
	overtime125Limit   = 2.0
	overtime150Cutoff  = regularHoursLimit + overtime125Limit
	standardDayInHours = 8.0
)

var (
	rate125Multiplier = decimal.NewFromFloat(1.25)
	rate150Multiplier = decimal.NewFromFloat(1.5)
)

// HourWindows is a day's worked hours split into pay-rate windows. The three
// windows always sum to Total exactly.
type HourWindows struct {
	Total     float64
	Window100 float64
	Window125 float64
	Window150 float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// HoursFromContainers converts a container count to worked hours: filling
// one container norm equals one standard 8-hour day.
func HoursFromContainers(containers, containerNorm float64) float64 {
	if containerNorm <= 0 {
		return 0
	}
	return round2(containers / containerNorm * standardDayInHours)
}

// SplitHours distributes total worked hours across the 100%/125%/150%
// windows. The 100% window absorbs the rounding residue so the windows sum
// back to the total.
func SplitHours(totalHours float64) HourWindows {
	if totalHours <= 0 {
		return HourWindows{}
	}

	total := round2(totalHours)
	w125 := round2(math.Min(math.Max(totalHours-regularHoursLimit, 0), overtime125Limit))
	w150 := round2(math.Max(totalHours-overtime150Cutoff, 0))
	w100 := round2(total - w125 - w150)

	return HourWindows{
		Total:     total,
		Window100: w100,
		Window125: w125,
		Window150: w150,
	}
}

// BaseWage prices only the 100% window. The overtime windows are reported to
// the salary system as hours and priced there, so the base component must not
// carry their premium.
func BaseWage(hourlyRate decimal.Decimal, w HourWindows) decimal.Decimal {
	return hourlyRate.Mul(decimal.NewFromFloat(w.Window100)).Round(2)
}

// DailyWage prices the hour windows at the given 100%-window hourly rate and
// rounds to two decimal places.
func DailyWage(hourlyRate decimal.Decimal, w HourWindows) decimal.Decimal {
	base := hourlyRate.Mul(decimal.NewFromFloat(w.Window100))
	ot125 := hourlyRate.Mul(rate125Multiplier).Mul(decimal.NewFromFloat(w.Window125))
	ot150 := hourlyRate.Mul(rate150Multiplier).Mul(decimal.NewFromFloat(w.Window150))
	return base.Add(ot125).Add(ot150).Round(2)
}
