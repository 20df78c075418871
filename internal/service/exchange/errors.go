package exchange

import "errors"

// ErrRateUnavailable indicates no rate source is configured.
var ErrRateUnavailable = errors.New("eur rate source not configured")
