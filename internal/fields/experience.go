package fields

import (
	"regexp"
	"strconv"
	"strings"
)

// Numeric experience patterns, evaluated in order. Ranges ("3-5 years")
// contribute their arithmetic mean and suppress the bare-years match that
// would otherwise fire on the upper bound.
var (
	reYearsExperience = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)\s*\+?\s*experience`)
	reExperienceYears = regexp.MustCompile(`experience[^\n]*?(\d+)\s*(?:years?|yrs?)`)
	reBareYears       = regexp.MustCompile(`(\d+)\+?\s*years?`)
	reYearRange       = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*years?`)
	reMonths          = regexp.MustCompile(`(\d+)\s*months?`)

	// Work-history date ranges; two or more suggest a career of roughly
	// two years per position.
	reDateRanges = []*regexp.Regexp{
		regexp.MustCompile(`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}\s*(?:-|to)\s*(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{4}`),
		regexp.MustCompile(`\d{1,2}/\d{4}\s*(?:-|to)\s*\d{1,2}/\d{4}`),
		regexp.MustCompile(`\d{4}\s*(?:-|to)\s*\d{4}`),
	}

	reSummarySection = regexp.MustCompile(`(?is)(?:summary|objective|profile)[\s:]*(.*?)(?:\n\n|\n\w+:)`)
)

// ExtractExperienceYears collects every candidate experience figure the
// text offers and returns the maximum, or 0 if none. A resume usually
// restates one headline figure several times; max avoids double counting
// while keeping the most emphatic value. This is a heuristic, not a
// guarantee: stray digit runs can contribute spurious candidates.
func ExtractExperienceYears(text string) float64 {
	lower := strings.ToLower(text)

	cands := numericCandidates(lower)

	if n := countDateRanges(lower); n >= 2 {
		cands = append(cands, float64(2*n))
	}

	if m := reSummarySection.FindStringSubmatch(lower); m != nil {
		cands = append(cands, numericCandidates(m[1])...)
	}

	var max float64
	for _, c := range cands {
		if c > max {
			max = c
		}
	}
	return max
}

func numericCandidates(lower string) []float64 {
	var cands []float64

	ranges := reYearRange.FindAllStringSubmatchIndex(lower, -1)
	for _, m := range ranges {
		lo, okLo := atoiSub(lower, m, 1)
		hi, okHi := atoiSub(lower, m, 2)
		if okLo && okHi {
			cands = append(cands, (lo+hi)/2)
		}
	}

	single := []struct {
		re     *regexp.Regexp
		months bool
	}{
		{reYearsExperience, false},
		{reExperienceYears, false},
		{reBareYears, false},
		{reMonths, true},
	}
	for _, p := range single {
		for _, m := range p.re.FindAllStringSubmatchIndex(lower, -1) {
			if overlapsRange(m, ranges) {
				continue
			}
			v, ok := atoiSub(lower, m, 1)
			if !ok {
				continue
			}
			if p.months {
				v /= 12
			}
			cands = append(cands, v)
		}
	}
	return cands
}

func countDateRanges(lower string) int {
	n := 0
	for _, re := range reDateRanges {
		n += len(re.FindAllStringIndex(lower, -1))
	}
	return n
}

// atoiSub parses capture group g of a FindAllStringSubmatchIndex match.
func atoiSub(s string, m []int, g int) (float64, bool) {
	lo, hi := m[2*g], m[2*g+1]
	if lo < 0 || hi < 0 {
		return 0, false
	}
	v, err := strconv.Atoi(s[lo:hi])
	if err != nil {
		return 0, false
	}
	return float64(v), true
}

func overlapsRange(m []int, ranges [][]int) bool {
	for _, r := range ranges {
		if m[0] < r[1] && r[0] < m[1] {
			return true
		}
	}
	return false
}
