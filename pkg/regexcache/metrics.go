package regexcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cache counters are process-wide: the cache itself may be shared across
// parser sessions, so per-instance metrics would double count.
var (
	hitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netparse_pattern_cache_hits_total",
		Help: "Pattern compilations served from the cache.",
	})
	missesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netparse_pattern_cache_misses_total",
		Help: "Pattern compilations that required a fresh compile.",
	})
	evictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netparse_pattern_cache_evictions_total",
		Help: "Compiled patterns evicted from the cache.",
	})
	compileErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netparse_pattern_compile_errors_total",
		Help: "Pattern compilations that failed with a syntax error.",
	})
)
