package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	allowAll = "*"
	// preflightMaxAge is the Chromium upper bound, in seconds.
	preflightMaxAge = "7200"
)

// CORS allows every origin, method and header on every response. Requested
// methods and headers are reflected when the client names them. Preflight
// requests continue down the chain like any other request.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()

		h.Set("Access-Control-Allow-Origin", allowAll)
		h.Set("Access-Control-Expose-Headers", allowAll)

		if method := c.GetHeader("Access-Control-Request-Method"); method != "" {
			h.Set("Access-Control-Allow-Methods", method)
			h.Add("Vary", "Access-Control-Request-Method")
		} else {
			h.Set("Access-Control-Allow-Methods", allowAll)
		}

		if headers := c.GetHeader("Access-Control-Request-Headers"); headers != "" {
			h.Set("Access-Control-Allow-Headers", headers)
			h.Add("Vary", "Access-Control-Request-Headers")
		} else {
			h.Set("Access-Control-Allow-Headers", allowAll)
		}

		if isPreflight(c.Request) {
			h.Set("Access-Control-Max-Age", preflightMaxAge)
		}

		c.Next()
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions &&
		r.Header.Get("Origin") != "" &&
		r.Header.Get("Access-Control-Request-Method") != ""
}
