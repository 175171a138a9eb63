package forecast

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LangKorean selects the Korean layout
const LangKorean = "ko"

// layout describes one header/line format
type layout struct {
	header     func(location string, days int) string
	underline  func(location string, days int) int
	lineFormat string
}

var defaultLayout = layout{
	header: func(location string, days int) string {
		return fmt.Sprintf("%d-day forecast for %s", days, location)
	},
	underline: func(location string, days int) int {
		return utf8.RuneCountInString(location) + len(strconv.Itoa(days)) + 20
	},
	lineFormat: "%-15s | High: %2d°F (%2d°C) | Low: %2d°F (%2d°C) | %s\n",
}

var koreanLayout = layout{
	header: func(location string, days int) string {
		return fmt.Sprintf("%s %d일 일기예보", location, days)
	},
	underline: func(location string, days int) int {
		// UTF-8 byte length, not rune count
		return len(location) + len(strconv.Itoa(days)) + 10
	},
	lineFormat: "%-12s | 최고: %2d°F (%2d°C) | 최저: %2d°F (%2d°C) | %s\n",
}

// Render formats the forecast for location. days is the requested horizon and
// is named in the header even when fewer days are available.
func Render(location string, days int, result Result, lang string) string {
	l := defaultLayout
	if lang == LangKorean {
		l = koreanLayout
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(l.header(location, days))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", l.underline(location, days)))
	b.WriteString("\n\n")

	title := titleCaser(lang)
	for _, day := range result {
		label := day.Date.Format("Monday, Jan 02")
		if lang == LangKorean {
			label = koreanDate(day.Date)
		}
		fmt.Fprintf(&b, l.lineFormat,
			label,
			Fahrenheit(day.HighF), Celsius(day.HighF),
			Fahrenheit(day.LowF), Celsius(day.LowF),
			title.String(day.Description),
		)
	}

	return b.String()
}

// titleCaser returns a title caser for lang, falling back to undetermined rules
func titleCaser(lang string) cases.Caser {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Und
	}
	return cases.Title(tag)
}
