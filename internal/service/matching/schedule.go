package matching

import "skillswap/pkg/timeutil"

// slotBounds returns the slot's minute range. Malformed or empty slots
// report false and are treated as contributing nothing.
func slotBounds(slot AvailabilitySlot) (int, int, bool) {
	return timeutil.Interval(slot.StartTime, slot.EndTime)
}

// SlotDuration returns the length of a slot in minutes, or 0 if it is malformed.
func SlotDuration(slot AvailabilitySlot) int {
	from, to, ok := slotBounds(slot)
	if !ok {
		return 0
	}
	return to - from
}

// SlotOverlap returns the minutes two slots share. Slots on different
// weekdays never overlap.
func SlotOverlap(a, b AvailabilitySlot) int {
	if a.Weekday != b.Weekday {
		return 0
	}
	aFrom, aTo, ok := slotBounds(a)
	if !ok {
		return 0
	}
	bFrom, bTo, ok := slotBounds(b)
	if !ok {
		return 0
	}
	return timeutil.Overlap(aFrom, aTo, bFrom, bTo)
}

// countOverlappingSlots counts slot pairs that share at least one minute.
func countOverlappingSlots(a, b []AvailabilitySlot) int {
	count := 0
	for _, sa := range a {
		for _, sb := range b {
			if SlotOverlap(sa, sb) > 0 {
				count++
			}
		}
	}
	return count
}
