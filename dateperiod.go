package sdn_advanced

import "fmt"

// decodeDatePeriod implements §4.8. It walks the Start/End boundaries in
// document order, takes the first with a non-empty Year, and returns the
// most specific representable ISO form. Returns "" if no boundary carries
// a year.
func decodeDatePeriod(dp *datePeriodXML) string {
	if dp == nil {
		return ""
	}
	for _, boundary := range []*boundaryXML{dp.Start, dp.End} {
		if boundary == nil || boundary.From == nil {
			continue
		}
		year := boundary.From.Year
		if year == "" {
			continue
		}
		month := zeroPad2(boundary.From.Month)
		day := zeroPad2(boundary.From.Day)
		switch {
		case month != "" && day != "":
			return fmt.Sprintf("%s-%s-%s", year, month, day)
		case month != "":
			return fmt.Sprintf("%s-%s", year, month)
		default:
			return year
		}
	}
	return ""
}

func zeroPad2(s string) string {
	if s == "" {
		return ""
	}
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
