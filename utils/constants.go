// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the session lifetime: both the JWT expiry and the TTL of
// the cached token hash that makes sessions revocable.
const AuthCacheTTL = 7 * 24 * time.Hour

// DateLayout is the calendar-date encoding used throughout the API.
const DateLayout = "2006-01-02"

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 1440
