package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/William-datamaster/table-tennis/internal/models"
	appErrors "github.com/William-datamaster/table-tennis/pkg/errors"
	"github.com/William-datamaster/table-tennis/pkg/response"
)

type rosterStateSource interface {
	State() models.RosterState
}

// RosterGate blocks ledger mutations until the startup roster load has
// settled. A failed load opens the gate: adds are then rejected by name
// validation instead, and the client sees the load-failure notice.
func RosterGate(source rosterStateSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if source.State() == models.RosterStateLoading {
			response.Error(c, appErrors.ErrRosterLoading)
			c.Abort()
			return
		}
		c.Next()
	}
}
