package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

type CachePrefix string

const (
	CachePrefixAnalytics   CachePrefix = "analytics:"
	CachePrefixRouteSearch CachePrefix = "route_search:"
)

// AnalyticsCacheTTLMinutes is how long a computed summary is served from
// cache before being recomputed.
const AnalyticsCacheTTLMinutes = 15

// ImportMaxRows caps a single CSV schedule upload.
const ImportMaxRows = 5000
