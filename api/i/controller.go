// Package i defines the contracts the HTTP layer is assembled from.
package i

import "github.com/gin-gonic/gin"

// Controller registers a feature's routes on the API router.
type Controller interface {
	Register(route *gin.RouterGroup)
}
