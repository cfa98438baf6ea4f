package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"coffeeos/internal/microservices/pos/service"
)

// CtxBranch is the gin context key holding the resolved branch id.
const CtxBranch = "branch_id"

// BranchContext resolves the :branchID path segment before any handler runs.
// An absent or unknown id is rejected up front, so handlers can rely on a
// valid branch context.
func BranchContext(directory service.DirectoryServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("branchID")
		branch, err := directory.ResolveBranch(c.Request.Context(), id)
		if err != nil {
			Problem(c, http.StatusBadRequest, "missing_context",
				"branch context could not be resolved; re-select tenant and branch")
			return
		}
		c.Set(CtxBranch, branch.ID)
		c.Next()
	}
}

// UUIDParam returns the named path parameter, rejecting values that cannot
// be a stored id before they reach a database cast.
func UUIDParam(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		Problem(c, http.StatusNotFound, "not_found", name+" "+id+" does not exist")
		return "", false
	}
	return id, true
}
