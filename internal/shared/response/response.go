package response

import (
	"net/http"

	"github.com/MRigonM/EmployeeManagement/internal/shared/result"

	"github.com/gin-gonic/gin"
)

// FromResult writes the caller-facing outcome mapping: success with a value
// becomes 200 + value, failure becomes 400 + the ordered error list.
func FromResult[T any](c *gin.Context, r result.Result[T]) {
	if r.IsSuccess() {
		c.JSON(http.StatusOK, r.Value())
		return
	}
	c.JSON(http.StatusBadRequest, r.Errors())
}

// Fail writes an error list outside the Result flow (binding failures,
// malformed path parameters) with the given status.
func Fail(c *gin.Context, status int, errs ...result.Error) {
	c.JSON(status, errs)
}

func Unauthorized(c *gin.Context, code, description string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, []result.Error{result.NewError(code, description)})
}

func Forbidden(c *gin.Context, code, description string) {
	c.AbortWithStatusJSON(http.StatusForbidden, []result.Error{result.NewError(code, description)})
}
