package dashboard

import "time"

const businessDayStartHour = 6

// BusinessDayStart 06:00 текущего дня во временной зоне now,
// до 06:00 - 06:00 предыдущего календарного дня.
func BusinessDayStart(now time.Time) time.Time {
	start := time.Date(now.Year(), now.Month(), now.Day(), businessDayStartHour, 0, 0, 0, now.Location())
	if now.Before(start) {
		start = time.Date(now.Year(), now.Month(), now.Day()-1, businessDayStartHour, 0, 0, 0, now.Location())
	}
	return start
}
