package js

import (
	"math"
	"testing"
	"time"

	"github.com/matzehuels/chartscript/pkg/errors"
	"github.com/matzehuels/chartscript/pkg/optional"
)

func TestPrimitiveRender(t *testing.T) {
	tests := []struct {
		name        string
		value       Value
		want        string
		wantPresent bool
	}{
		{"string", NewString("Incident date"), `"Incident date"`, true},
		{"string escaped quote", NewString(`say "hi"`), `"say \"hi\""`, true},
		{"string escaped backslash", NewString(`a\b`), `"a\\b"`, true},
		{"string script close", NewString("</script>"), `"\u003C/script\u003E"`, true},
		{"string newline", NewString("a\nb"), `"a\u000Ab"`, true},
		{"string null", String{}, "", false},
		{"string of none", StringOf(optional.None[string]()), "", false},
		{"non-empty string empty", NonEmptyString(""), "", false},
		{"bool true", True, "true", true},
		{"bool false", NewBool(false), "false", true},
		{"bool null", BoolOf(nil), "", false},
		{"int", NewInt(5), "5", true},
		{"int negative", NewInt(-12), "-12", true},
		{"int null", Int{}, "", false},
		{"double", NewDouble(10.0), "10.000", true},
		{"double rounding", NewDouble(10.1), "10.100", true},
		{"double many digits", NewDouble(2.34567), "2.346", true},
		{"double null", Double{}, "", false},
		{"double nan", NewDouble(math.NaN()), "", false},
		{"double positive infinity", NewDouble(math.Inf(1)), "", false},
		{"double negative infinity", DoubleOf(optional.Some(math.Inf(-1))), "", false},
		{"identifier", NewIdentifier("$.jqplot.DateAxisRenderer"), "$.jqplot.DateAxisRenderer", true},
		{"identifier empty", NewIdentifier(""), "", false},
		{"color", NewColor("#FF5500"), `"#FF5500"`, true},
		{"color emptied", NewColor(""), `"transparent"`, true},
		{"color none", ColorOf(nil), "", false},
		{"color of empty", ColorOf(optional.Some("")), `"transparent"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.value.Render()
			if ok != tt.wantPresent {
				t.Fatalf("Render() present = %v, want %v", ok, tt.wantPresent)
			}
			if got != tt.want {
				t.Errorf("Render() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNullable(t *testing.T) {
	tests := []struct {
		name string
		v    Nullable
		want bool
	}{
		{"string", String{}, true},
		{"bool", NewBool(true), false},
		{"int", Int{}, true},
		{"double", NewDouble(1), false},
		{"identifier", NewIdentifier("x"), false},
		{"date", DateTime{}, true},
	}
	for _, tt := range tests {
		if got := tt.v.IsNull(); got != tt.want {
			t.Errorf("%s IsNull() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRenderNil(t *testing.T) {
	var obj *Object
	if IsPresent(obj) {
		t.Error("nil *Object should be absent")
	}
	if IsPresent(nil) {
		t.Error("nil Value should be absent")
	}
	if got := Literal(nil, "null"); got != "null" {
		t.Errorf("Literal(nil) = %q, want null", got)
	}
}

func TestDateTimeRender(t *testing.T) {
	ts := time.Date(2010, 10, 20, 12, 30, 59, 0, time.FixedZone("", 3600))

	tests := []struct {
		format DateTimeFormat
		want   string
	}{
		{DateOnly, `"2010-10-20"`},
		{DateAndTime, `"2010-10-20 12:30:59"`},
		{DateTimeWithMillis, `"2010-10-20 12:30:59.0"`},
		{FullISO, `"2010-10-20T12:30:59+01:00"`},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			got, ok := NewDateTime(ts, tt.format).Render()
			if !ok || got != tt.want {
				t.Errorf("Render() = %s, %v; want %s", got, ok, tt.want)
			}
		})
	}

	millis := time.Date(2010, 10, 20, 12, 30, 59, 123*int(time.Millisecond), time.UTC)
	if got, _ := NewDateTime(millis, DateTimeWithMillis).Render(); got != `"2010-10-20 12:30:59.123"` {
		t.Errorf("millisecond render = %s", got)
	}

	if _, ok := DateTimeOf(nil, DateOnly).Render(); ok {
		t.Error("DateTimeOf(None) should be absent")
	}

	var zero DateTimeFormat
	if zero.Valid() {
		t.Error("zero DateTimeFormat should not be Valid")
	}
	if got, _ := NewDateTime(ts, zero).Render(); got != `"2010-10-20 12:30:59"` {
		t.Errorf("zero format render = %s, want the DateAndTime layout", got)
	}
}

func TestParseDateTimeFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    DateTimeFormat
		wantErr bool
	}{
		{"date", DateOnly, false},
		{"DateTime", DateAndTime, false},
		{" datetime-millis ", DateTimeWithMillis, false},
		{"iso", FullISO, false},
		{"epoch", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseDateTimeFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDateTimeFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidArgument) {
			t.Errorf("ParseDateTimeFormat(%q) code = %v", tt.in, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseDateTimeFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if DateTimeFormat(0).Valid() {
		t.Error("zero DateTimeFormat should not be valid")
	}
}
