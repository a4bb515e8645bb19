package dedupe

// Package dedupe provides the shared singleflight group used to deduplicate
// concurrent chart computations. Chart rankings are derived from the full
// career aggregate; when several clients poll the same career in the same
// week only one computation runs and the rest share the result.

import "golang.org/x/sync/singleflight"

// ChartGroup deduplicates chart ranking computations keyed by
// "<career code>:<week>".
var ChartGroup singleflight.Group
