package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds the Prometheus metrics for one batch run. A batch job has
// nothing to scrape, so the counters live on a private registry and are
// pushed to a Pushgateway when the run finishes.
type Metrics struct {
	registry *prometheus.Registry

	// Reconciliation metrics
	RowsWritten       prometheus.Counter
	SectionsSkipped   prometheus.Counter
	ReceiptsLinked    prometheus.Counter
	ManualDropped     prometheus.Counter
	IntegrityFailures prometheus.Counter

	// Dues metrics
	MembersChecked prometheus.Counter
	MembersExempt  prometheus.Counter
	NoticesSent    prometheus.Counter
	NoticesFailed  prometheus.Counter
	TotalOwedWon   prometheus.Gauge
}

// New creates and registers all run metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		RowsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_rows_written_total",
			Help: "Total ledger rows written this run",
		}),
		SectionsSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_sections_skipped_total",
			Help: "Month sections skipped because they were already filled",
		}),
		ReceiptsLinked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_receipts_linked_total",
			Help: "Withdrawal rows pre-populated with a receipt link",
		}),
		ManualDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_manual_values_dropped_total",
			Help: "Manual cell values dropped during forced rewrites",
		}),
		IntegrityFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_integrity_failures_total",
			Help: "Runs aborted by a data-integrity fault",
		}),
		MembersChecked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_members_checked_total",
			Help: "Members examined by the dues check",
		}),
		MembersExempt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_members_exempt_total",
			Help: "Members excused from dues by the payment sheet",
		}),
		NoticesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_notices_sent_total",
			Help: "Arrears notices delivered",
		}),
		NoticesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubledger_notices_failed_total",
			Help: "Arrears notice deliveries that failed",
		}),
		TotalOwedWon: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clubledger_total_owed_won",
			Help: "Sum of outstanding dues across members, in KRW",
		}),
	}

	reg.MustRegister(
		m.RowsWritten, m.SectionsSkipped, m.ReceiptsLinked, m.ManualDropped,
		m.IntegrityFailures, m.MembersChecked, m.MembersExempt,
		m.NoticesSent, m.NoticesFailed, m.TotalOwedWon,
	)

	return m
}

// Push sends the run's metrics to a Pushgateway under the given job name.
func (m *Metrics) Push(gatewayURL, job string) error {
	return push.New(gatewayURL, job).Gatherer(m.registry).Push()
}
