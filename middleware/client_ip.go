package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// clientKey identifies the caller for rate limiting and request logs.
// Proxy headers win over the socket address; an unparseable value is
// returned as-is so distinct callers still get distinct buckets.
func clientKey(c *gin.Context) string {
	for _, header := range []string{"X-Forwarded-For", "X-Real-IP"} {
		v := c.GetHeader(header)
		if v == "" {
			continue
		}
		first, _, _ := strings.Cut(v, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	if addr == "" {
		return "unknown"
	}
	return addr
}
