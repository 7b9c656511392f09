package jqplot

import "strings"

// datePart maps a Java date pattern letter group to its date renderer
// token.
type datePart struct {
	java, js string
}

// dateTactics are applied in order. Within a tactic the parts are tried in
// the listed order and only the first match is replaced.
var dateTactics = [][]datePart{
	{{"a", "%p"}},
	{{"yyyy", "%Y"}, {"YYYY", "%Y"}, {"yy", "%y"}, {"YY", "%y"}, {"y", "%Y"}, {"Y", "%Y"}},
	{{"MMMM", "%B"}, {"MMM", "%b"}, {"MM", "%m"}, {"M", "%#m"}},
	{
		{"dddd", "%A"}, {"ddd", "%a"}, {"DDD", "%a"}, {"dd", "%d"}, {"DD", "%d"},
		{"d", "%#d"}, {"D", "%#d"}, {"E", "%A"}, {"F", "%w"}, {"u", "%o"},
	},
	{{"hh", "%#I"}, {"h", "%I"}, {"HH", "%H"}, {"H", "%#H"}, {"k", "%#H"}},
	{{"mm", "%M"}, {"m", "%#M"}},
	{{"SSS", "%N"}, {"S", "%#N"}},
	{{"ss", "%S"}, {"s", "%#S"}},
	{{"z", "%O"}, {"ZZ", "%G"}, {"Z", "%Z"}},
}

// ConvertDateFormat rewrites a Java style date pattern such as
// "yyyy-MM-dd'T'HH:mm:ssZZ" into date renderer tokens
// ("%Y-%m-%d'T'%H:%M:%S%G"). Each unit is converted at most once; an
// occurrence already preceded by '%' or '#' counts as converted.
func ConvertDateFormat(pattern string) string {
	if pattern == "" {
		return pattern
	}
	out := pattern
	for _, tactic := range dateTactics {
		out = applyTactic(out, tactic)
	}
	return out
}

func applyTactic(s string, tactic []datePart) string {
	for _, p := range tactic {
		i := strings.Index(s, p.java)
		if i < 0 {
			continue
		}
		if i > 0 && (s[i-1] == '%' || s[i-1] == '#') {
			continue
		}
		return strings.Replace(s, p.java, p.js, 1)
	}
	return s
}
