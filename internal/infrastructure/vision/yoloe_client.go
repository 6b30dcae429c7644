package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"movequote/internal/platform/logger"
	"movequote/internal/usecase/interfaces"
)

const (
	defaultServiceURL     = "http://localhost:8001"
	defaultTimeoutSeconds = 300
)

// YOLOEClient calls the object-detection service over HTTP. Detection runs
// are synchronous and video uploads can take minutes, so the client timeout
// is configured in seconds rather than milliseconds.
//
// Env vars:
//   - YOLOE_SERVICE_URL (default: http://localhost:8001)
//   - VISION_TIMEOUT_SECONDS (default: 300)
type YOLOEClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

var _ interfaces.IVisionClient = (*YOLOEClient)(nil)

func NewYOLOEClient(log *logger.Logger) *YOLOEClient {
	baseURL := os.Getenv("YOLOE_SERVICE_URL")
	if baseURL == "" {
		baseURL = defaultServiceURL
	}

	timeout := defaultTimeoutSeconds
	if raw := os.Getenv("VISION_TIMEOUT_SECONDS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = parsed
		}
	}

	return &YOLOEClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		log:        log,
	}
}

func (c *YOLOEClient) DetectText(ctx context.Context, req interfaces.DetectRequest) (interfaces.DetectResult, error) {
	return c.post(ctx, "/detect/text", req)
}

func (c *YOLOEClient) DetectAuto(ctx context.Context, req interfaces.DetectRequest) (interfaces.DetectResult, error) {
	return c.post(ctx, "/detect/auto", req)
}

func (c *YOLOEClient) post(ctx context.Context, path string, req interfaces.DetectRequest) (interfaces.DetectResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return interfaces.DetectResult{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return interfaces.DetectResult{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.log.Debug("calling vision service", "path", path, "job_id", req.JobID, "files", len(req.Files))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return interfaces.DetectResult{}, fmt.Errorf("vision service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return interfaces.DetectResult{}, fmt.Errorf("vision service returned status %d", resp.StatusCode)
	}

	var result interfaces.DetectResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return interfaces.DetectResult{}, fmt.Errorf("vision service response decode failed: %w", err)
	}
	return result, nil
}
