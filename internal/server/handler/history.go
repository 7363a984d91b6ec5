package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"simci/internal/common"
)

// ListHistory returns every terminal run, oldest-first.
func (h *Handler) ListHistory(c *gin.Context) {
	common.Success(c, h.engine.Tracker().History())
}

// DownloadHistory serves the history as a raw JSON attachment. No response
// envelope here: the export must parse back to exactly the sequence
// ListHistory returns.
func (h *Handler) DownloadHistory(c *gin.Context) {
	hist := h.engine.Tracker().History()
	payload, err := json.MarshalIndent(hist, "", "  ")
	if err != nil {
		common.Error(c, common.NewErrNo(common.GetHistoryFail))
		return
	}
	c.Header("Content-Disposition", `attachment; filename=history.json`)
	c.Data(http.StatusOK, "application/json", payload)
}
