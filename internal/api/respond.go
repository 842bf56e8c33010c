package api

import (
	"github.com/gin-gonic/gin"

	"simplified/internal/apperr"
)

// respondError maps a taxonomy error to a non-2xx JSON response carrying the
// machine-readable kind and the human-readable detail.
func respondError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	c.JSON(apperr.HTTPStatus(kind), gin.H{
		"error": apperr.Detail(err),
		"kind":  kind,
	})
}

func respondInvalid(c *gin.Context, message string) {
	respondError(c, apperr.New(apperr.KindInvalidInput, "api", message))
}
