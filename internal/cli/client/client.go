// Package client is the thin HTTP helper the CLI commands share.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"simci/internal/common"
)

var serverURL = "http://localhost:5000"

func init() {
	if envURL := os.Getenv("SIMCI_SERVER_URL"); envURL != "" {
		serverURL = envURL
	}
}

func SendRequest(method, path string, body io.Reader) (*http.Response, error) {
	url := serverURL + path
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	return httpClient.Do(req)
}

func ReadResponseBody(resp *http.Response) ([]byte, error) {
	if resp == nil || resp.Body == nil {
		return nil, fmt.Errorf("response is nil")
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}
	return body, nil
}

// UnwrapData calls path, unpacks the {code, message, data} envelope and
// unmarshals data into out.
func UnwrapData(method, path string, body io.Reader, out any) error {
	resp, err := SendRequest(method, path, body)
	if err != nil {
		return err
	}
	raw, err := ReadResponseBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	if envelope.Code != common.SuccessCode {
		return fmt.Errorf("request failed: %s", envelope.Message)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}
