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
	MetricNameItemsPurchased  = "items_purchased_total"
	MetricNameSilverSpent     = "silver_spent_total"
	MetricNameGoldSpent       = "gold_spent_total"
	MetricNameUsersRegistered = "users_registered_total"
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
	HelpTextItemsPurchased  = "Total number of items purchased"
	HelpTextSilverSpent     = "Total silver spent on purchases"
	HelpTextGoldSpent       = "Total gold spent on purchases"
	HelpTextUsersRegistered = "Total number of registered accounts"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelStore  = "store"
	LabelItem   = "item"
)

// Store label values
const (
	StoreGeneral = "general"
	StorePremium = "premium"
)

// HTTPLatencyBuckets defines histogram buckets for HTTP request durations
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
