package metrics

// Attribute keys shared by the otel instruments.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrResource = "resource"
)

// Resource names used when recording feed fetches.
const (
	ResourceSchedule = "schedule"
	ResourceDetail   = "detail"
)
