package config

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	parsesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netparse_parses_total",
		Help: "Completed parse invocations.",
	})
	linesParsedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netparse_lines_parsed_total",
		Help: "Config lines turned into tree nodes.",
	})
	parseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "netparse_parse_duration_seconds",
		Help:    "Wall time of a parse invocation.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
	findQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netparse_find_queries_total",
		Help: "Find queries executed against the line tree.",
	})
	ambiguousSectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netparse_ambiguous_sections_total",
		Help: "Section lookups that failed due to zero or multiple parent matches.",
	})
)
