package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildfy/backend/internal/feature"
)

// TierHeader carries the caller's subscription tier, resolved upstream
// by the auth layer. Anything missing or unknown is treated as free.
const TierHeader = "X-Subscription-Tier"

// tierFrom resolves the request's subscription tier, preferring an
// explicit override when one is supplied in the body.
func tierFrom(c *gin.Context, override string) feature.Tier {
	if override != "" {
		return feature.Normalize(override)
	}
	return feature.Normalize(c.GetHeader(TierHeader))
}

func abortError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func abortForbidden(c *gin.Context, f feature.Feature) {
	c.JSON(http.StatusForbidden, gin.H{
		"error":   "subscription tier does not include this feature",
		"feature": string(f),
	})
}
