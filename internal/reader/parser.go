package reader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Egor213/LogAnalyzer/internal/domain"
)

type Format string

const (
	FormatWeblog Format = "weblog"
	FormatCLF    Format = "clf"
)

const clfTimeLayout = "02/Jan/2006:15:04:05 -0700"

var clfTimeRegex = regexp.MustCompile(`\[(\d{2}/[A-Za-z]{3}/\d{4}:\d{2}:\d{2}:\d{2} [+-]\d{4})\]`)

type parseFunc func(line string) (domain.LogEntry, error)

func parserFor(f Format) (parseFunc, error) {
	switch f {
	case FormatWeblog, "":
		return parseWeblog, nil
	case FormatCLF:
		return parseCLF, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// parseWeblog reads "year month day hour minute". Anything after the fifth
// field is ignored. Values are not range-checked.
func parseWeblog(line string) (domain.LogEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return domain.LogEntry{}, fmt.Errorf("%w: want 5 fields, got %d", ErrMalformedEntry, len(fields))
	}

	var nums [5]int
	for i := range nums {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return domain.LogEntry{}, fmt.Errorf("%w: field %d: %q", ErrMalformedEntry, i+1, fields[i])
		}
		nums[i] = n
	}

	return domain.LogEntry{
		Year:   nums[0],
		Month:  nums[1],
		Day:    nums[2],
		Hour:   nums[3],
		Minute: nums[4],
	}, nil
}

// parseCLF takes the bracketed timestamp of a Common/Combined Log Format line.
// Fields are taken as written, the offset is not applied.
func parseCLF(line string) (domain.LogEntry, error) {
	m := clfTimeRegex.FindStringSubmatch(line)
	if m == nil {
		return domain.LogEntry{}, fmt.Errorf("%w: no timestamp", ErrMalformedEntry)
	}

	ts, err := time.Parse(clfTimeLayout, m[1])
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("%w: %v", ErrMalformedEntry, err)
	}

	return domain.LogEntry{
		Year:   ts.Year(),
		Month:  int(ts.Month()),
		Day:    ts.Day(),
		Hour:   ts.Hour(),
		Minute: ts.Minute(),
	}, nil
}
