// Package theme implements the circadian colour scheme: twelve two-hour
// periods, each with a fixed palette, an explicit colour store views read
// from, and the scheduler that keeps the store in step with the clock.
package theme

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

type Period int

const (
	DeepNight Period = iota // 00:00-02:00
	LateNight               // 02:00-04:00
	PreDawn                 // 04:00-06:00
	Dawn                    // 06:00-08:00
	EarlyMorning            // 08:00-10:00
	LateMorning             // 10:00-12:00
	Noon                    // 12:00-14:00
	Afternoon               // 14:00-16:00
	LateAfternoon           // 16:00-18:00
	Dusk                    // 18:00-20:00
	Evening                 // 20:00-22:00
	Night                   // 22:00-24:00

	periodCount = 12
)

var periodNames = [periodCount]string{
	"DeepNight", "LateNight", "PreDawn", "Dawn", "EarlyMorning", "LateMorning",
	"Noon", "Afternoon", "LateAfternoon", "Dusk", "Evening", "Night",
}

var periodLabels = [periodCount]string{
	"Deep Night", "Late Night", "Pre-Dawn", "Dawn", "Early Morning", "Late Morning",
	"Noon", "Afternoon", "Late Afternoon", "Dusk", "Evening", "Night",
}

// PeriodAt is the period containing t's wall-clock hour.
func PeriodAt(t time.Time) Period {
	return Period(t.Hour() / 2)
}

func Periods() []Period {
	out := make([]Period, periodCount)
	for i := range out {
		out[i] = Period(i)
	}
	return out
}

func (p Period) Valid() bool {
	return p >= DeepNight && p <= Night
}

func (p Period) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Period(%d)", int(p))
	}
	return periodNames[p]
}

// Label is the human-readable name shown in the header and settings.
func (p Period) Label() string {
	if !p.Valid() {
		return periodLabels[Noon]
	}
	return periodLabels[p]
}

// Next cycles forward, wrapping Night back to DeepNight.
func (p Period) Next() Period {
	if !p.Valid() {
		return Noon
	}
	return (p + 1) % periodCount
}

// ParsePeriod accepts a period name in any case and spacing ("late night",
// "LateNight", "pre-dawn") or its index, and tolerates small typos.
func ParsePeriod(raw string) (Period, bool) {
	norm := squash(raw)
	if norm == "" {
		return 0, false
	}
	if idx, err := strconv.Atoi(norm); err == nil {
		p := Period(idx)
		return p, p.Valid()
	}

	best, bestDist := Period(-1), -1
	for i, name := range periodNames {
		d := levenshtein.ComputeDistance(norm, strings.ToLower(name))
		if d == 0 {
			return Period(i), true
		}
		if d > typoLimit(len(name)) {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = Period(i), d
		}
	}
	return best, best.Valid()
}

func typoLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func squash(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
