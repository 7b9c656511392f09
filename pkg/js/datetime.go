package js

import (
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/optional"
)

// DateTimeFormat selects how a [DateTime] is written. The zero value is not
// a format; constructors taking one reject it with NULL_ARGUMENT.
type DateTimeFormat int

const (
	// DateOnly writes 2010-10-20.
	DateOnly DateTimeFormat = iota + 1
	// DateAndTime writes 2010-10-20 12:30:59.
	DateAndTime
	// DateTimeWithMillis writes 2010-10-20 12:30:59.0, the fraction being
	// the millisecond count.
	DateTimeWithMillis
	// FullISO writes RFC 3339 with offset, 2010-10-20T12:30:59+01:00.
	FullISO
)

var dateTimeFormatNames = map[DateTimeFormat]string{
	DateOnly:           "date",
	DateAndTime:        "datetime",
	DateTimeWithMillis: "datetime-millis",
	FullISO:            "iso",
}

// ParseDateTimeFormat maps a format name to its variant.
func ParseDateTimeFormat(s string) (DateTimeFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range dateTimeFormatNames {
		if n == name {
			return f, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidArgument,
		"unknown date format %q (must be date, datetime, datetime-millis or iso)", s)
}

// Valid reports whether f is one of the defined formats.
func (f DateTimeFormat) Valid() bool {
	_, ok := dateTimeFormatNames[f]
	return ok
}

func (f DateTimeFormat) String() string {
	if n, ok := dateTimeFormatNames[f]; ok {
		return n
	}
	return "DateTimeFormat(" + strconv.Itoa(int(f)) + ")"
}

// Format writes t in the layout f selects. A format that is not Valid,
// including the zero value, writes the DateAndTime layout.
func (f DateTimeFormat) Format(t time.Time) string {
	switch f {
	case DateOnly:
		return t.Format(time.DateOnly)
	case DateTimeWithMillis:
		return t.Format(time.DateTime) + "." + strconv.Itoa(t.Nanosecond()/int(time.Millisecond))
	case FullISO:
		return t.Format(time.RFC3339Nano)
	default:
		return t.Format(time.DateTime)
	}
}

// DateTime is a quoted calendar value.
type DateTime struct {
	v      optional.Option[time.Time]
	format DateTimeFormat
}

// NewDateTime returns a present DateTime written in format f. Unlike the
// series constructors it accepts an invalid f and falls back to DateAndTime.
func NewDateTime(t time.Time, f DateTimeFormat) DateTime {
	return DateTime{v: optional.Some(t), format: f}
}

// DateTimeOf returns a DateTime that is absent when o is None.
func DateTimeOf(o optional.Option[time.Time], f DateTimeFormat) DateTime {
	return DateTime{v: o, format: f}
}

func (d DateTime) Render() (string, bool) {
	if !d.v.Has() {
		return "", false
	}
	return `"` + d.format.Format(d.v.Value()) + `"`, true
}

func (d DateTime) IsNull() bool { return !d.v.Has() }
