package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameSessionsStarted      = "whack_sessions_started_total"
	MetricNameSessionsResolved     = "whack_sessions_resolved_total"
	MetricNameStage2Entered        = "whack_stage2_entered_total"
	MetricNameSessionsCancelled    = "whack_sessions_cancelled_total"
	MetricNameSessionsSwept        = "whack_sessions_swept_total"
	MetricNameAmountWagered        = "whack_amount_wagered_total"
	MetricNameAmountPaidOut        = "whack_amount_paid_out_total"
	MetricNameFeesCollected        = "whack_fees_collected_total"
	MetricNameRefundsIssued        = "whack_refunds_issued_total"
	MetricNameLedgerAppendFailures = "whack_ledger_append_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextSessionsStarted      = "Total number of wagering sessions started"
	HelpTextSessionsResolved     = "Total number of sessions resolved, by outcome"
	HelpTextStage2Entered        = "Total number of sessions escalated to stage 2"
	HelpTextSessionsCancelled    = "Total number of sessions cancelled, by reason"
	HelpTextSessionsSwept        = "Total number of expired sessions swept"
	HelpTextAmountWagered        = "Total amount wagered, in raw token units"
	HelpTextAmountPaidOut        = "Total amount paid out, in raw token units"
	HelpTextFeesCollected        = "Total fees collected, in raw token units"
	HelpTextRefundsIssued        = "Total refunds issued, in raw token units"
	HelpTextLedgerAppendFailures = "Total number of failed ledger appends"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelReason  = "reason"
	LabelKind    = "kind"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
