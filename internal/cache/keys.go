package cache

import (
	"fmt"
	"strings"
	"time"
)

// QuickSearchTTL bounds how stale cached quick-search results may get.
const QuickSearchTTL = 5 * time.Minute

// QuickSearchKey is the cache key for a free-text quick search term.
func QuickSearchKey(term string) string {
	return fmt.Sprintf("search:quick:%s", strings.ToLower(strings.TrimSpace(term)))
}
