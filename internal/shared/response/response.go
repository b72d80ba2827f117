package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biztime/internal/shared/apperror"
)

// errorEnvelope is the body shape for every non-2xx response:
// {"error": {"message": ..., "status": ...}}
type errorEnvelope struct {
	Error apperror.HTTPError `json:"error"`
}

// Resource writes a success body keyed by the resource name,
// e.g. Resource(c, 200, "company", comp) -> {"company": {...}}.
func Resource(c *gin.Context, status int, key string, data any) {
	c.JSON(status, gin.H{key: data})
}

// Raw writes data as the body with no wrapping object.
func Raw(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// Deleted writes the delete confirmation body {"status": "deleted"}.
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Error writes the error envelope for err at its mapped status.
func Error(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	c.JSON(httpErr.Status, errorEnvelope{Error: httpErr})
}
