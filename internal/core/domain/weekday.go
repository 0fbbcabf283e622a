package domain

// WeekdayConvention selects how a day of week is numbered.
// Values follow the return_type argument of the spreadsheet WEEKDAY function.
type WeekdayConvention int

// Supported conventions.
const (
	// SundayFirst numbers Sunday 1 through Saturday 7.
	SundayFirst WeekdayConvention = 1

	// MondayFirst numbers Monday 1 through Sunday 7.
	MondayFirst WeekdayConvention = 2

	// MondayZero numbers Monday 0 through Sunday 6.
	MondayZero WeekdayConvention = 3

	// MondayFirstAlt through SundayFirstAlt (11 to 17) number the named day 1.
	MondayFirstAlt    WeekdayConvention = 11
	TuesdayFirstAlt   WeekdayConvention = 12
	WednesdayFirstAlt WeekdayConvention = 13
	ThursdayFirstAlt  WeekdayConvention = 14
	FridayFirstAlt    WeekdayConvention = 15
	SaturdayFirstAlt  WeekdayConvention = 16
	SundayFirstAlt    WeekdayConvention = 17
)

// IsValid returns true if the convention is recognised.
func (c WeekdayConvention) IsValid() bool {
	switch {
	case c == SundayFirst, c == MondayFirst, c == MondayZero:
		return true
	case c >= MondayFirstAlt && c <= SundayFirstAlt:
		return true
	default:
		return false
	}
}

// sundayIndex returns 0 for Sunday through 6 for Saturday.
// Serial 0 is a Saturday and serial 1 a Sunday.
func sundayIndex(d CanonicalDate) int {
	idx := int((d.Day() + 6) % 7)
	if idx < 0 {
		idx += 7
	}
	return idx
}

// DayOfWeek returns the weekday ordinal of d under convention c.
func DayOfWeek(d CanonicalDate, c WeekdayConvention) (int, error) {
	sun := sundayIndex(d)
	switch {
	case c == SundayFirst:
		return sun + 1, nil
	case c == MondayFirst:
		return (sun+6)%7 + 1, nil
	case c == MondayZero:
		return (sun + 6) % 7, nil
	case c >= MondayFirstAlt && c <= SundayFirstAlt:
		first := int(c-MondayFirstAlt+1) % 7
		return (sun-first+7)%7 + 1, nil
	default:
		return 0, ErrInvalidConvention
	}
}

// MondayOrdinal is DayOfWeek under MondayFirst, which cannot fail.
func MondayOrdinal(d CanonicalDate) int {
	return (sundayIndex(d)+6)%7 + 1
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d CanonicalDate) bool {
	return MondayOrdinal(d) >= 6
}
