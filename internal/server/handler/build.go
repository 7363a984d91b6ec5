package handler

import (
	"github.com/gin-gonic/gin"

	"simci/internal/common"
	"simci/pkg/api"
)

// ListBuilds returns the current-runs list, most-recent-first. Running and
// recently finished runs both appear here; history is the permanent record.
func (h *Handler) ListBuilds(c *gin.Context) {
	common.Success(c, h.engine.Tracker().Current())
}

// GetLog returns the full log text for a run. A missing stream is not an
// error; the log comes back empty.
func (h *Handler) GetLog(c *gin.Context) {
	runID := c.Param("id")
	common.Success(c, api.LogResponse{Log: h.store.ReadLog(runID)})
}
