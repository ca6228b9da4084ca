// Package availability holds the calendar rules deciding whether a slot can be booked.
// Everything here is pure: no I/O, no state.
package availability

import (
	"time"

	"github.com/Astemirdum/ureserve/gateway/internal/model"
)

const groupMembers = 3

// IsDateSelectable is false on Sundays and on days before today. Only the calendar day counts.
func IsDateSelectable(date, today time.Time) bool {
	if date.Weekday() == time.Sunday {
		return false
	}
	return !dayOf(date).Before(dayOf(today))
}

// IsRangeValid requires start strictly before end on the same day.
func IsRangeValid(start, end model.Clock) bool {
	return start < end
}

func RemainingSlots(required int, members []model.Person) int {
	if n := required - len(members); n > 0 {
		return n
	}
	return 0
}

func RequiredMembers(ft model.FacilityType) int {
	if ft.IsGroup() {
		return groupMembers
	}
	return 1
}

// Overlaps treats both ranges as half-open, so back-to-back slots do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd model.Clock) bool {
	return aStart < bEnd && bStart < aEnd
}

// Conflicts returns the live reservations on date whose range overlaps [start, end).
func Conflicts(date model.Date, start, end model.Clock, existing []model.Reservation) []model.Reservation {
	var out []model.Reservation
	for _, r := range existing {
		if r.Status == model.StatusCancelled || r.Status == model.StatusFinished {
			continue
		}
		if !sameDay(r.Date.Time, date.Time) {
			continue
		}
		if Overlaps(start, end, r.StartTime, r.EndTime) {
			out = append(out, r)
		}
	}
	return out
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return dayOf(a).Equal(dayOf(b))
}
