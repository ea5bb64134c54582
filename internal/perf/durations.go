package perf

import (
	"sort"
	"strings"
	"time"
)

type SpanDuration struct {
	Name     string
	Duration time.Duration
}

// Durations lists the spans whose name starts with prefix in start order.
func Durations(spans []SpanSnapshot, prefix string) []SpanDuration {
	matching := make([]SpanSnapshot, 0, len(spans))
	for _, span := range spans {
		if strings.HasPrefix(span.Name, prefix) {
			matching = append(matching, span)
		}
	}

	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].StartTime.Before(matching[j].StartTime)
	})

	out := make([]SpanDuration, 0, len(matching))
	for _, span := range matching {
		out = append(out, SpanDuration{Name: span.Name, Duration: span.Duration()})
	}
	return out
}
