package handler

import (
	"github.com/gin-gonic/gin"

	"simci/internal/common"
	"simci/pkg/api"
)

// StartRun triggers a run and returns its id without waiting for
// completion. An unknown job name is not rejected; the engine falls back to
// the default step sequence. An absent body defaults to app-ci.
func (h *Handler) StartRun(c *gin.Context) {
	var req api.RunRequest
	_ = c.ShouldBindJSON(&req)
	if req.Job == "" {
		req.Job = "app-ci"
	}

	runID := h.engine.StartRun(req.Job)
	common.Success(c, api.RunResponse{RunID: runID})
}
