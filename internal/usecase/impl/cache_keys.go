package impl

import (
	"strconv"
	"strings"
)

const cacheKeyPrefix = "arches:"

func catalogCacheKey() string {
	return cacheKeyPrefix + "catalog"
}

// nearbyCacheKey keys on the exact query values. Rounded coordinates would let
// two queries on opposite sides of a boundary location share one result set.
func nearbyCacheKey(longitude, latitude, radiusMeters float64) string {
	var b strings.Builder
	b.WriteString(cacheKeyPrefix)
	b.WriteString("nearby:")
	b.WriteString(formatExact(longitude))
	b.WriteByte(':')
	b.WriteString(formatExact(latitude))
	b.WriteByte(':')
	b.WriteString(formatExact(radiusMeters))

	return b.String()
}

func formatExact(v float64) string {
	if v == 0 {
		// -0 and 0 share a key.
		v = 0
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
