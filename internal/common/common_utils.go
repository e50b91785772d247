package common

import (
	"fmt"
	"strings"
	"time"
)

func GetResponseTime(init time.Time) string {
	return fmt.Sprintf("%dms", time.Since(init).Milliseconds())
}

// NormalizeIata upper-cases and trims an airport/carrier code. Empty input
// stays empty so downstream placeholder rules apply.
func NormalizeIata(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
