package handler

import (
	"github.com/gin-gonic/gin"

	"simci/internal/common"
	"simci/pkg/api"
)

// Reset clears all persisted documents and run logs. In-flight runs are not
// cancelled and will re-persist themselves at their next step boundary.
func (h *Handler) Reset(c *gin.Context) {
	if err := h.engine.Tracker().Reset(); err != nil {
		common.Error(c, common.NewErrNo(common.ResetFail))
		return
	}
	common.Success(c, api.ResetResponse{Message: "reset done"})
}
