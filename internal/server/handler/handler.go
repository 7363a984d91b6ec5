package handler

import (
	"github.com/gin-gonic/gin"

	"simci/internal/engine"
	"simci/internal/store"
)

// Handler wires the query/command surface to the run engine and the
// persistence port.
type Handler struct {
	engine *engine.Engine
	store  store.Store
}

func New(e *engine.Engine, st store.Store) *Handler {
	return &Handler{engine: e, store: st}
}

// Register mounts the dashboard API.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/api/builds", h.ListBuilds)
	r.GET("/api/logs/:id", h.GetLog)
	r.POST("/api/run", h.StartRun)
	r.GET("/api/stats", h.GetStats)
	r.GET("/api/history", h.ListHistory)
	r.GET("/api/history/download", h.DownloadHistory)
	r.POST("/api/reset", h.Reset)
}
