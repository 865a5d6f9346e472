package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsStarted,
			Help: HelpTextSessionsStarted,
		},
	)

	SessionsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsResolved,
			Help: HelpTextSessionsResolved,
		},
		[]string{LabelOutcome},
	)

	Stage2Entered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStage2Entered,
			Help: HelpTextStage2Entered,
		},
	)

	SessionsCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCancelled,
			Help: HelpTextSessionsCancelled,
		},
		[]string{LabelReason},
	)

	SessionsSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsSwept,
			Help: HelpTextSessionsSwept,
		},
	)

	AmountWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountWagered,
			Help: HelpTextAmountWagered,
		},
	)

	AmountPaidOut = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAmountPaidOut,
			Help: HelpTextAmountPaidOut,
		},
	)

	FeesCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFeesCollected,
			Help: HelpTextFeesCollected,
		},
	)

	RefundsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRefundsIssued,
			Help: HelpTextRefundsIssued,
		},
	)

	LedgerAppendFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerAppendFailures,
			Help: HelpTextLedgerAppendFailures,
		},
		[]string{LabelKind},
	)
)
