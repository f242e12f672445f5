package text

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/locrecipe"
)

var (
	isoDurationRe = regexp.MustCompile(`(?i)^P(?:(\d+(?:[.,]\d+)?)D)?(?:T(?:(\d+(?:[.,]\d+)?)H)?(?:(\d+(?:[.,]\d+)?)M)?(?:(\d+(?:[.,]\d+)?)S)?)?$`)

	// A range such as "10-15" or "1 to 2" keeps its upper bound.
	rangeRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:-|–|—|to)\s*(\d+(?:[.,]\d+)?)`)

	durationPartRe = regexp.MustCompile(`(?i)(\d+\s+\d+/\d+|\d+/\d+|\d+(?:[.,]\d+)?)\s*(days?|hours?|hrs?|óra|minutes?|mins?|perc|seconds?|secs?|d|h|m|s)`)
)

var fractionGlyphs = strings.NewReplacer(
	"¼", " 1/4", "½", " 1/2", "¾", " 3/4",
	"⅓", " 1/3", "⅔", " 2/3",
	"⅕", " 1/5", "⅖", " 2/5", "⅗", " 3/5", "⅘", " 4/5",
	"⅙", " 1/6", "⅚", " 5/6", "⅛", " 1/8", "⅜", " 3/8", "⅝", " 5/8", "⅞", " 7/8",
)

// Minutes parses a duration into whole minutes. It understands ISO 8601
// durations ("PT1H30M"), bare numbers taken as minutes ("45") and free
// text ("1 hour 30 mins", "1½ hrs", "10-15 minutes").
func (p *Processor) Minutes(s string) (int, error) {
	return Minutes(s)
}

// Minutes is the package-level form of Processor.Minutes.
func Minutes(s string) (int, error) {
	s = strings.TrimSpace(Normalize(s))
	if s == "" {
		return 0, locrecipe.Errorf(locrecipe.EINVALID, "empty duration")
	}

	if n, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64); err == nil {
		return int(math.Round(n)), nil
	}

	if m := isoDurationRe.FindStringSubmatch(s); m != nil && len(s) > 1 && !strings.EqualFold(s, "PT") {
		days, hours, minutes, seconds := number(m[1]), number(m[2]), number(m[3]), number(m[4])
		return total(days, hours, minutes, seconds), nil
	}

	s = fractionGlyphs.Replace(s)
	s = rangeRe.ReplaceAllString(s, "$2")

	var days, hours, minutes, seconds float64
	matched := false
	for _, m := range durationPartRe.FindAllStringSubmatch(s, -1) {
		value := number(m[1])
		matched = true
		switch unit := strings.ToLower(m[2]); {
		case strings.HasPrefix(unit, "d"):
			days += value
		case strings.HasPrefix(unit, "h"), unit == "óra":
			hours += value
		case strings.HasPrefix(unit, "m"), unit == "perc":
			minutes += value
		default:
			seconds += value
		}
	}
	if !matched {
		return 0, locrecipe.Errorf(locrecipe.EINVALID, "unrecognized duration %q", s)
	}
	return total(days, hours, minutes, seconds), nil
}

func total(days, hours, minutes, seconds float64) int {
	return int(days*24*60 + math.Round(hours*60) + math.Round(minutes) + math.Ceil(seconds/60))
}

// number parses "1", "1.5", "1,5", "1/2" and "1 1/2". Empty input is zero.
func number(s string) float64 {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	if s == "" {
		return 0
	}
	var whole float64
	if i := strings.IndexByte(s, ' '); i >= 0 {
		whole = number(s[:i])
		s = strings.TrimSpace(s[i+1:])
	}
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return whole
		}
		return whole + n/d
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return whole
	}
	return whole + v
}
