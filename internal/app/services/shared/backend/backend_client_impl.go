package backend

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const (
	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second
	maxResponseBodySize = 4 << 20
)

type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type backendClient struct {
	client  *http.Client
	baseUrl string
	log     *zap.Logger
}

// NewBackendClient builds a client for the backend REST API. Only transport
// errors are retried; a response of any status is returned as is.
func NewBackendClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.BackendClient {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = internalConfig.Backend.RetryMax
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = time.Duration(internalConfig.Backend.RequestTimeoutSeconds) * time.Second
	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}
		return false, nil
	}

	return &backendClient{
		client:  retryClient.StandardClient(),
		baseUrl: strings.TrimRight(internalConfig.Backend.BaseUrl, "/"),
		log:     logger,
	}
}

func (c *backendClient) Get(ctx context.Context, path string, credentials models.BackendCredentials, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, credentials, nil, out)
}

func (c *backendClient) Post(ctx context.Context, path string, credentials models.BackendCredentials, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, credentials, body, out)
}

func (c *backendClient) Patch(ctx context.Context, path string, credentials models.BackendCredentials, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, credentials, body, out)
}

func (c *backendClient) Delete(ctx context.Context, path string, credentials models.BackendCredentials, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, credentials, nil, out)
}

func (c *backendClient) do(ctx context.Context, method, path string, credentials models.BackendCredentials, body, out interface{}) error {
	if c.baseUrl == "" {
		return exceptions.ErrBackendAPINotConfigured(nil)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseUrl+ensureLeadingSlash(path), reader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if credentials.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+credentials.Token)
	}
	if credentials.Cookie != "" {
		req.Header.Set(constvars.HeaderCookie, credentials.Cookie)
	}
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok && requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return exceptions.ErrReadBody(err)
	}

	var payload envelope
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			if resp.StatusCode >= http.StatusBadRequest {
				return statusError(method, path, resp.StatusCode, "")
			}
			return exceptions.ErrBackendAPIDecode(err, method, path)
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Debug("backendClient.do backend returned error status",
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return statusError(method, path, resp.StatusCode, payload.Message)
	}

	if payload.Success != nil && !*payload.Success {
		return exceptions.ErrBackendAPIStatus(
			fmt.Errorf("backend reported failure"),
			constvars.StatusBadGateway,
			clientMessage(payload.Message),
			fmt.Sprintf(constvars.ErrDevBackendAPIUnsuccessful, method, path, payload.Message),
		)
	}

	if out == nil || len(payload.Data) == 0 || string(payload.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(payload.Data, out); err != nil {
		return exceptions.ErrBackendAPIDecode(err, method, path)
	}
	return nil
}

// statusError keeps client errors as they are and turns server errors into
// a bad gateway.
func statusError(method, path string, statusCode int, message string) error {
	mapped := statusCode
	if statusCode >= http.StatusInternalServerError || statusCode < http.StatusBadRequest {
		mapped = constvars.StatusBadGateway
	}
	return exceptions.ErrBackendAPIStatus(
		fmt.Errorf("backend responded with status %d", statusCode),
		mapped,
		clientMessage(message),
		fmt.Sprintf(constvars.ErrDevBackendAPIStatus, method, path, statusCode, message),
	)
}

func clientMessage(message string) string {
	if message == "" {
		return constvars.ErrClientCannotProcessRequest
	}
	return message
}

func ensureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
