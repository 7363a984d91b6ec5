package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"simci/internal/common"
	"simci/internal/stats"
)

// GetStats computes delivery metrics over the run history.
func (h *Handler) GetStats(c *gin.Context) {
	summary := stats.Compute(h.engine.Tracker().History(), time.Now())
	common.Success(c, summary)
}
