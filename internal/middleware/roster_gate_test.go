package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/William-datamaster/table-tennis/internal/models"
)

type fixedState struct {
	state models.RosterState
}

func (f fixedState) State() models.RosterState { return f.state }

func gateRequest(t *testing.T, state models.RosterState) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/lessons", RosterGate(fixedState{state}), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/lessons", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRosterGateBlocksWhileLoading(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, gateRequest(t, models.RosterStateLoading))
}

func TestRosterGateOpensWhenReady(t *testing.T) {
	assert.Equal(t, http.StatusCreated, gateRequest(t, models.RosterStateReady))
}

func TestRosterGateOpensAfterFailure(t *testing.T) {
	assert.Equal(t, http.StatusCreated, gateRequest(t, models.RosterStateFailed))
}
