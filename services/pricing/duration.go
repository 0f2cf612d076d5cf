package pricing

import (
	"time"

	"nestcare/models"
)

const (
	dateLayout = "2006-01-02"

	// minutesPerDay bounds a single care window.
	minutesPerDay = 24 * 60

	// emergencyMinimumHours is the billed floor for emergency call-outs: a
	// shorter call-out still bills five hours.
	emergencyMinimumHours = 5.0

	// maxSelectedDatesHourly caps how many dates a date-night or date-day
	// booking may select in one request.
	maxSelectedDatesHourly = 10

	// temporarySupportMinDays is the business minimum for gap coverage.
	temporarySupportMinDays = 5

	// prorataMonthDays is the flat month length used for proration. A 28- or
	// 31-day calendar month is deliberately not distinguished.
	prorataMonthDays = 30.0
)

// hourlyDayClass classifies a date for hourly rates: Saturday and Sunday are
// weekend.
func hourlyDayClass(t time.Time) models.DayClass {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return models.Weekend
	default:
		return models.Weekday
	}
}

// dailyDayClass classifies a date for the short-term daily rate structure:
// Friday, Saturday and Sunday are weekend. This differs from the ISO weekend
// on purpose; Friday day-care commands the weekend day rate.
func dailyDayClass(t time.Time) models.DayClass {
	switch t.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return models.Weekend
	default:
		return models.Weekday
	}
}

// DateHours is the billable-hour share of one selected date.
type DateHours struct {
	Date  string
	Class models.DayClass
	Hours float64
}

// HourlyDuration is the resolved duration of an hourly booking.
type HourlyDuration struct {
	TotalHours   float64
	WeekdayHours float64
	WeekendHours float64
	PerDate      []DateHours
}

// DailyDuration partitions selected dates into day classes for per-day rates.
type DailyDuration struct {
	WeekdayCount int
	WeekendCount int
}

// ProrataDuration scales monthly rates for gap-coverage bookings.
type ProrataDuration struct {
	TotalDays  int
	Multiplier float64 // TotalDays / 30
}

// windowHours returns the billable hours of one window. A window whose end
// precedes its start wraps past midnight, so the missing day is added back
// rather than producing a negative duration.
func windowHours(w models.TimeWindow) (float64, error) {
	if w.Start < 0 || w.Start >= minutesPerDay || w.End < 0 || w.End >= minutesPerDay {
		return 0, NewInvalidBookingRequest("time window out of range: start=%d end=%d", w.Start, w.End)
	}
	minutes := w.End - w.Start
	if minutes == 0 {
		return 0, NewInvalidBookingRequest("zero-length time window at minute %d", w.Start)
	}
	if minutes < 0 {
		// Overnight wrap: the window runs past midnight into the next day.
		minutes += minutesPerDay
	}
	return float64(minutes) / 60.0, nil
}

// resolveHourly computes total billable hours for an hourly booking. Windows
// are matched one per date, or a single shared window applies to every date.
// Sub-type duration rules: emergency call-outs bill a five-hour minimum;
// date-night and date-day reject more than ten selected dates.
func resolveHourly(sub models.BookingSubType, dates []string, windows []models.TimeWindow, loc *time.Location) (*HourlyDuration, error) {
	if len(windows) == 0 {
		return nil, NewInvalidBookingRequest("hourly booking requires at least one time window")
	}
	if len(windows) != 1 && len(windows) != len(dates) {
		return nil, NewInvalidBookingRequest("expected 1 or %d time windows, got %d", len(dates), len(windows))
	}
	if (sub == models.SubTypeDateNight || sub == models.SubTypeDateDay) && len(dates) > maxSelectedDatesHourly {
		return nil, NewDurationCapExceeded("selected dates for "+string(sub), maxSelectedDatesHourly, len(dates))
	}

	out := &HourlyDuration{}
	for i, d := range dates {
		day, err := time.ParseInLocation(dateLayout, d, loc)
		if err != nil {
			return nil, NewInvalidBookingRequest("malformed date %q", d)
		}
		w := windows[0]
		if len(windows) == len(dates) {
			w = windows[i]
		}
		hours, err := windowHours(w)
		if err != nil {
			return nil, err
		}
		class := hourlyDayClass(day)
		out.PerDate = append(out.PerDate, DateHours{Date: d, Class: class, Hours: hours})
		out.TotalHours += hours
		if class == models.Weekend {
			out.WeekendHours += hours
		} else {
			out.WeekdayHours += hours
		}
	}

	if sub == models.SubTypeEmergency && out.TotalHours < emergencyMinimumHours {
		// Billed minimum, applied to the first (often only) date.
		deficit := emergencyMinimumHours - out.TotalHours
		out.PerDate[0].Hours += deficit
		if out.PerDate[0].Class == models.Weekend {
			out.WeekendHours += deficit
		} else {
			out.WeekdayHours += deficit
		}
		out.TotalHours = emergencyMinimumHours
	}
	return out, nil
}

// resolveDaily classifies selected dates into weekday/weekend counts using
// the Friday-inclusive weekend rule.
func resolveDaily(dates []string, loc *time.Location) (*DailyDuration, error) {
	out := &DailyDuration{}
	for _, d := range dates {
		day, err := time.ParseInLocation(dateLayout, d, loc)
		if err != nil {
			return nil, NewInvalidBookingRequest("malformed date %q", d)
		}
		if dailyDayClass(day) == models.Weekend {
			out.WeekendCount++
		} else {
			out.WeekdayCount++
		}
	}
	return out, nil
}

// resolveProrata computes the prorata fraction of a flat 30-day month for
// gap-coverage bookings.
func resolveProrata(dates []string) *ProrataDuration {
	return &ProrataDuration{
		TotalDays:  len(dates),
		Multiplier: float64(len(dates)) / prorataMonthDays,
	}
}

// validateGapCoverageDates enforces the gap-coverage calendar rules: at
// least five days, and any gap inside the selected span may only be Sundays.
func validateGapCoverageDates(dates []string, loc *time.Location) error {
	if len(dates) < temporarySupportMinDays {
		return NewInvalidBookingRequest("gap coverage requires at least %d days, got %d", temporarySupportMinDays, len(dates))
	}
	selected := make(map[string]bool, len(dates))
	var first, last time.Time
	for i, d := range dates {
		day, err := time.ParseInLocation(dateLayout, d, loc)
		if err != nil {
			return NewInvalidBookingRequest("malformed date %q", d)
		}
		selected[d] = true
		if i == 0 || day.Before(first) {
			first = day
		}
		if i == 0 || day.After(last) {
			last = day
		}
	}
	for day := first; day.Before(last); day = day.AddDate(0, 0, 1) {
		if selected[day.Format(dateLayout)] {
			continue
		}
		if day.Weekday() != time.Sunday {
			return NewInvalidBookingRequest("gap coverage may only skip Sundays; %s is excluded", day.Format(dateLayout))
		}
	}
	return nil
}
