package forecast

import (
	"fmt"
	"time"
)

var koreanDays = map[time.Weekday]string{
	time.Monday:    "월요일",
	time.Tuesday:   "화요일",
	time.Wednesday: "수요일",
	time.Thursday:  "목요일",
	time.Friday:    "금요일",
	time.Saturday:  "토요일",
	time.Sunday:    "일요일",
}

var koreanMonths = map[time.Month]string{
	time.January:   "1월",
	time.February:  "2월",
	time.March:     "3월",
	time.April:     "4월",
	time.May:       "5월",
	time.June:      "6월",
	time.July:      "7월",
	time.August:    "8월",
	time.September: "9월",
	time.October:   "10월",
	time.November:  "11월",
	time.December:  "12월",
}

// koreanDate formats a date like "1월 05일 월요일"
func koreanDate(t time.Time) string {
	return fmt.Sprintf("%s %02d일 %s", koreanMonths[t.Month()], t.Day(), koreanDays[t.Weekday()])
}
