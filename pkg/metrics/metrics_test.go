package metrics_test

import (
	"testing"

	"github.com/Gunvolt24/cloak_gw/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister_IsIdempotent(t *testing.T) {
	// Должно выполняться без паники даже при повторном вызове.
	metrics.MustRegister()
	metrics.MustRegister()
}

func TestUpstreamCounters_Inc(t *testing.T) {
	metrics.MustRegister()

	before := testutil.ToFloat64(metrics.UpstreamAttempts.WithLabelValues("/flows/create", "retryable"))
	metrics.UpstreamAttempts.WithLabelValues("/flows/create", "retryable").Inc()

	if got := testutil.ToFloat64(metrics.UpstreamAttempts.WithLabelValues("/flows/create", "retryable")); got != before+1 {
		t.Fatalf("UpstreamAttempts: got=%v want=%v", got, before+1)
	}
}

func TestCacheOps_CountersByLabel(t *testing.T) {
	metrics.MustRegister()

	hitBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit"))
	missBefore := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss"))

	metrics.CacheOps.WithLabelValues("hit").Inc()
	metrics.CacheOps.WithLabelValues("hit").Inc()

	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("hit")); got != hitBefore+2 {
		t.Fatalf("CacheOps(hit): got=%v want=%v", got, hitBefore+2)
	}
	if got := testutil.ToFloat64(metrics.CacheOps.WithLabelValues("miss")); got != missBefore {
		t.Fatalf("CacheOps(miss): got=%v want=%v", got, missBefore)
	}
}

func TestCacheRefresh_PerKey(t *testing.T) {
	metrics.MustRegister()

	okBefore := testutil.ToFloat64(metrics.CacheRefresh.WithLabelValues("devices", "ok"))
	failedBefore := testutil.ToFloat64(metrics.CacheRefresh.WithLabelValues("devices", "failed"))

	metrics.CacheRefresh.WithLabelValues("devices", "failed").Inc()

	if got := testutil.ToFloat64(metrics.CacheRefresh.WithLabelValues("devices", "failed")); got != failedBefore+1 {
		t.Fatalf("CacheRefresh(failed): got=%v want=%v", got, failedBefore+1)
	}
	if got := testutil.ToFloat64(metrics.CacheRefresh.WithLabelValues("devices", "ok")); got != okBefore {
		t.Fatalf("CacheRefresh(ok) changed: got=%v want=%v", got, okBefore)
	}
}
