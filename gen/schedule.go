package gen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
)

// standardParser accepts the five-field cron format the generated workflows
// use. Every expression this package returns must pass it.
var standardParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow,
)

var weekdays = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

var (
	everyNPattern   = regexp.MustCompile(`^every (\d+) (minutes?|hours?)$`)
	atTimePattern   = regexp.MustCompile(`\bat (\d{1,2})(?::(\d{2}))?\s*(am|pm)?$`)
	monthDayPattern = regexp.MustCompile(`\bon day (\d{1,2})\b`)
)

// CronFromPhrase converts a natural-language time phrase into a five-field
// cron expression.
//
// Supported shapes: "hourly", "daily", "weekly", "monthly", "every N
// minutes/hours", "every <weekday>", and any of the daily/weekly/monthly
// forms with a trailing "at H[:MM][am|pm]" clause ("every day at 9am",
// "weekly on friday at 17:30", "monthly on day 15 at 6am"). Unrecognized
// phrases fail rather than guess.
func CronFromPhrase(phrase string) (string, error) {
	clean := strings.ToLower(strings.TrimSpace(phrase))
	if clean == "" {
		return "", fmt.Errorf("gen: schedule phrase is empty")
	}

	expr, err := cronFromPhrase(clean)
	if err != nil {
		return "", err
	}
	// A generated expression that the workflow scheduler cannot parse is a
	// bug in this package, not caller input.
	if _, parseErr := standardParser.Parse(expr); parseErr != nil {
		return "", fmt.Errorf("gen: generated invalid cron %q from %q: %w", expr, phrase, parseErr)
	}
	return expr, nil
}

func cronFromPhrase(clean string) (string, error) {
	if m := everyNPattern.FindStringSubmatch(clean); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > 59 {
			return "", fmt.Errorf("gen: interval %q out of range", m[1])
		}
		if strings.HasPrefix(m[2], "minute") {
			return fmt.Sprintf("*/%d * * * *", n), nil
		}
		if n > 23 {
			return "", fmt.Errorf("gen: hour interval %d out of range", n)
		}
		return fmt.Sprintf("0 */%d * * *", n), nil
	}

	hour, minute := 0, 0
	rest := clean
	if m := atTimePattern.FindStringSubmatch(clean); m != nil {
		h, err := strconv.Atoi(m[1])
		if err != nil {
			return "", fmt.Errorf("gen: bad hour in %q", clean)
		}
		if m[2] != "" {
			minute, err = strconv.Atoi(m[2])
			if err != nil || minute > 59 {
				return "", fmt.Errorf("gen: bad minute in %q", clean)
			}
		}
		switch m[3] {
		case "pm":
			if h < 12 {
				h += 12
			}
		case "am":
			if h == 12 {
				h = 0
			}
		}
		if h > 23 {
			return "", fmt.Errorf("gen: hour %d out of range in %q", h, clean)
		}
		hour = h
		rest = strings.TrimSpace(strings.TrimSuffix(clean, m[0]))
	}

	switch {
	case rest == "hourly" || rest == "every hour":
		return "0 * * * *", nil
	case rest == "daily" || rest == "every day" || rest == "":
		return fmt.Sprintf("%d %d * * *", minute, hour), nil
	case rest == "weekly" || rest == "every week":
		return fmt.Sprintf("%d %d * * 0", minute, hour), nil
	case rest == "monthly" || rest == "every month":
		return fmt.Sprintf("%d %d 1 * *", minute, hour), nil
	}

	for name, dow := range weekdays {
		if rest == "every "+name || rest == "weekly on "+name || rest == name+"s" {
			return fmt.Sprintf("%d %d * * %d", minute, hour, dow), nil
		}
	}

	if m := monthDayPattern.FindStringSubmatch(rest); m != nil {
		day, err := strconv.Atoi(m[1])
		if err != nil || day < 1 || day > 31 {
			return "", fmt.Errorf("gen: day of month %q out of range", m[1])
		}
		return fmt.Sprintf("%d %d %d * *", minute, hour, day), nil
	}

	return "", fmt.Errorf("gen: unrecognized schedule phrase %q", clean)
}
