package datevalue

import (
	"math"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/netdays/internal/core/domain"
)

const secondsPerDay = 86400

var (
	// serialEpoch is day 0 of the 1900 date system for dates after the
	// phantom 1900-02-29.
	serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

	// firstRealMarch is the first day whose serial counts the phantom leap day.
	firstRealMarch = time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC)

	// phantomEpoch is day 0 for serials before the phantom 1900-02-29.
	phantomEpoch = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// SerialFromTime converts the wall-clock date and time of t into a serial.
// The location of t is ignored. Years outside 1900..9999 are rejected.
func SerialFromTime(t time.Time) (domain.CanonicalDate, error) {
	if t.Year() < 1900 || t.Year() > 9999 {
		return 0, domain.NewValueError(t, "year outside 1900..9999")
	}

	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := (day.Unix() - serialEpoch.Unix()) / secondsPerDay
	if day.Before(firstRealMarch) {
		days--
	}

	clock := t.Hour()*3600 + t.Minute()*60 + t.Second()
	fraction := (float64(clock) + float64(t.Nanosecond())/1e9) / secondsPerDay

	return domain.CanonicalDate(float64(days) + fraction), nil
}

// TimeFromSerial converts a serial back to a UTC time. It reverses
// SerialFromTime: serials 1 to 59 are January and February 1900, and the
// phantom leap day 60 becomes 1900-03-01.
func TimeFromSerial(d domain.CanonicalDate) (time.Time, error) {
	v := float64(d)
	if v < 0 || v >= 61 {
		return excelize.ExcelDateToTime(v, false)
	}
	days := math.Floor(v)
	clock := time.Duration(math.Round((v - days) * secondsPerDay))
	return phantomEpoch.AddDate(0, 0, int(days)).Add(clock * time.Second), nil
}

// FormatSerial renders the date part of a serial as YYYY-MM-DD.
// Serials that cannot be converted are rendered as numbers.
func FormatSerial(d domain.CanonicalDate) string {
	t, err := TimeFromSerial(d)
	if err != nil {
		return formatNumber(float64(d))
	}
	return t.Format(time.DateOnly)
}
