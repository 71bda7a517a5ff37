package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateBillNumber generates a bill number of the form "#1693550000000.123",
// a millisecond timestamp plus a random three digit suffix to disambiguate
// bills created within the same millisecond.
func GenerateBillNumber(now time.Time) string {
	return fmt.Sprintf("#%d.%03d", now.UnixMilli(), rand.Intn(1000))
}

// FormatBillDate renders a bill date as DD/MM/YY
func FormatBillDate(t time.Time) string {
	return t.Format("02/01/06")
}

// FormatBillTime renders a bill time as HH:MM AM/PM
func FormatBillTime(t time.Time) string {
	return t.Format("03:04 PM")
}
