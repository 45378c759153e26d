// Command ping is the container HEALTHCHECK for notes-api:
//
//	HEALTHCHECK CMD ["/ping"]
//
// It exits 0 when GET /healthz on APP_PORT answers 200 with status "ok".
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"
)

const (
	defaultPort          = 8080
	healthEndpoint       = "/healthz"
	expectedHealthStatus = "ok"
	requestTimeout       = 1 * time.Second

	// exit codes
	codeRequestFailed     = 2
	codeBadHTTPStatus     = 3
	codeDecodeError       = 4
	codeReportedUnhealthy = 5
)

// healthResp mirrors the /healthz body, e.g. {"status":"down","error":"..."}
type healthResp struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// probeError carries the process exit code for a failed probe
type probeError struct {
	code int
	msg  string
}

func (e *probeError) Error() string { return e.msg }

func main() {
	port := detectPort(os.Getenv("APP_PORT"))
	url := fmt.Sprintf("http://localhost:%d%s", port, healthEndpoint)

	if err := probe(&http.Client{Timeout: requestTimeout}, url); err != nil {
		log.Print(err)
		var pe *probeError
		if errors.As(err, &pe) {
			os.Exit(pe.code)
		}
		os.Exit(1)
	}

	log.Printf("service healthy on port %d", port)
}

// probe performs one health request against url
func probe(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return &probeError{codeRequestFailed, fmt.Sprintf("request failed: %v", err)}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close response body: %v", err)
		}
	}()

	var h healthResp
	if err := json.NewDecoder(resp.Body).Decode(&h); err != nil && !errors.Is(err, io.EOF) {
		return &probeError{codeDecodeError, fmt.Sprintf("decode error: %v", err)}
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("unexpected HTTP status %d", resp.StatusCode)
		if h.Error != "" {
			msg += ": " + h.Error
		}
		return &probeError{codeBadHTTPStatus, msg}
	}
	if h.Status != "" && h.Status != expectedHealthStatus {
		return &probeError{codeReportedUnhealthy, fmt.Sprintf("service reported unhealthy: %q", h.Status)}
	}
	return nil
}

// detectPort parses v and falls back to defaultPort
func detectPort(v string) int {
	if v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p <= 65535 {
			return p
		}
	}
	return defaultPort
}
