package citaapi

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rainchen/cita-common/metrics_config"
	"github.com/rainchen/cita-common/rpc"
)

var (
	blockRequests *prometheus.CounterVec
	blockCache    *prometheus.CounterVec
)

func init() {
	registerMetrics()
}

func registerMetrics() {
	blockRequests = metrics_config.NewCounterVec("block_requests", "Outcome of block queries served by the block API")
	blockCache = metrics_config.NewCounterVec("block_cache", "Converted block cache lookups")
}

// observe counts the outcome of a block query.
func observe(err error) {
	if blockRequests == nil {
		return
	}
	label := "ok"
	if err != nil {
		label = "backend_error"
		if kind, ok := rpc.KindOf(err); ok {
			switch kind {
			case rpc.DecodeError:
				label = "decode_error"
			case rpc.ConversionError:
				label = "conversion_error"
			case rpc.NotFoundError:
				label = "not_found"
			}
		}
	}
	blockRequests.WithLabelValues(label).Inc()
}

func observeCache(hit bool) {
	if blockCache == nil {
		return
	}
	if hit {
		blockCache.WithLabelValues("hit").Inc()
	} else {
		blockCache.WithLabelValues("miss").Inc()
	}
}
