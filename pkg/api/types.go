// Package api holds the request/response shapes shared by the server
// handlers and the CLI client.
package api

type RunRequest struct {
	Job string `json:"job"`
}

type RunResponse struct {
	RunID string `json:"run_id"`
}

type LogResponse struct {
	Log string `json:"log"`
}

type ResetResponse struct {
	Message string `json:"message"`
}
