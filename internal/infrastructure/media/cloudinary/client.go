package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/matchdayhq/matchday-api/internal/platform/logging"
	"github.com/matchdayhq/matchday-api/internal/platform/resilience"
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

var errCloudinaryTransient = crerr.New("cloudinary transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	CloudName      string
	APIKey         string
	APISecret      string
	Folder         string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client uploads player photos to Cloudinary using signed requests.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	cloudName      string
	apiKey         string
	apiSecret      string
	folder         string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	now            func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		cloudName:      strings.TrimSpace(cfg.CloudName),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		apiSecret:      strings.TrimSpace(cfg.APISecret),
		folder:         strings.Trim(strings.TrimSpace(cfg.Folder), "/"),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		now:            time.Now,
	}
}

type uploadResponse struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload pushes the photo bytes and returns the hosted HTTPS URL.
func (c *Client) Upload(ctx context.Context, fileName string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", fmt.Errorf("photo content is empty")
	}

	publicID := c.publicIDFor(fileName)
	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	params["signature"] = c.sign(params)
	params["api_key"] = c.apiKey

	body, contentType, err := buildMultipartBody(params, fileName, content)
	if err != nil {
		return "", fmt.Errorf("build upload body: %w", err)
	}

	raw, err := c.do(ctx, c.endpoint("upload"), contentType, body)
	if err != nil {
		return "", err
	}

	var parsed uploadResponse
	if err := sonic.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if parsed.Error.Message != "" {
		return "", fmt.Errorf("upload rejected: %s", parsed.Error.Message)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("upload response carries no secure url")
	}

	return parsed.SecureURL, nil
}

// Delete removes a previously uploaded photo by its hosted reference.
func (c *Client) Delete(ctx context.Context, ref string) error {
	publicID := publicIDFromRef(ref, c.folder)
	if publicID == "" {
		return nil
	}

	params := map[string]string{
		"public_id": publicID,
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	params["signature"] = c.sign(params)
	params["api_key"] = c.apiKey

	body, contentType, err := buildMultipartBody(params, "", nil)
	if err != nil {
		return fmt.Errorf("build destroy body: %w", err)
	}

	if _, err := c.do(ctx, c.endpoint("destroy"), contentType, body); err != nil {
		return err
	}

	return nil
}

// Owns reports whether the reference points at a Cloudinary-hosted asset.
// Local /uploads URLs left over from a run without Cloudinary do not.
func (c *Client) Owns(ref string) bool {
	return strings.Contains(ref, "cloudinary.com")
}

func (c *Client) endpoint(action string) string {
	return fmt.Sprintf("%s/%s/image/%s", c.baseURL, c.cloudName, action)
}

func (c *Client) publicIDFor(fileName string) string {
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if c.folder == "" {
		return name
	}
	return c.folder + "/" + name
}

// sign computes Cloudinary's request signature: the sorted parameters
// joined as a query string, with the API secret appended, hashed with SHA-1.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+params[key])
	}

	sum := sha1.Sum([]byte(strings.Join(parts, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

func (c *Client) do(ctx context.Context, fullURL, contentType string, body []byte) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "cloudinary circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("media storage is temporarily unavailable: %w", err)
		}
	}

	raw, err := c.executeRequest(ctx, fullURL, contentType, body)
	if c.circuitEnabled {
		if err != nil && crerr.Is(err, errCloudinaryTransient) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}

	return raw, err
}

func (c *Client) executeRequest(ctx context.Context, fullURL, contentType string, body []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errCloudinaryTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errCloudinaryTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d", errCloudinaryTransient, resp.StatusCode)
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "cloudinary request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func buildMultipartBody(params map[string]string, fileName string, content []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := writer.WriteField(key, params[key]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", key, err)
		}
	}

	if len(content) > 0 {
		part, err := writer.CreateFormFile("file", fileName)
		if err != nil {
			return nil, "", fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(content); err != nil {
			return nil, "", fmt.Errorf("write file part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

// publicIDFromRef extracts the public id from a hosted Cloudinary URL.
func publicIDFromRef(ref, folder string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}

	idx := strings.LastIndex(ref, "/")
	if idx < 0 {
		return ""
	}
	name := ref[idx+1:]
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	if name == "" {
		return ""
	}
	if folder != "" {
		return folder + "/" + name
	}
	return name
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	if len(raw) <= limit {
		return string(raw)
	}
	return string(raw[:limit]) + "..."
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
