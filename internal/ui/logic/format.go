package logic

import "github.com/dustin/go-humanize"

const lastUpdatedLayout = "2 Jan 2006, 3:04 pm"

// FormatDate renders a lastUpdatedAt timestamp as "7 Apr 2020, 3:22 pm GMT".
// Empty or unreadable input renders as "".
func FormatDate(s string) string {
	t, ok := ParseUTC(s)
	if !ok {
		return ""
	}
	return t.Format(lastUpdatedLayout) + " GMT"
}

// FormatCount renders n with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

