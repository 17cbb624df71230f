package images

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxRedirects = 3

type imageUsecase struct {
	Client         *http.Client
	Cache          contracts.ImageCache
	AllowedHosts   []string
	CacheableHosts []string
	MaxSize        int64
	Log            *zap.Logger
}

// NewImageUsecase builds the proxy. cache may be nil, which disables
// caching.
func NewImageUsecase(internalConfig *config.InternalConfig, cache contracts.ImageCache, logger *zap.Logger) contracts.ImageUsecase {
	uc := &imageUsecase{
		Cache:          cache,
		AllowedHosts:   normalizeHosts(internalConfig.Proxy.AllowedHosts),
		CacheableHosts: normalizeHosts(internalConfig.Proxy.CacheableHosts),
		MaxSize:        internalConfig.Proxy.MaxImageSizeInMB << 20,
		Log:            logger,
	}
	if uc.MaxSize <= 0 {
		uc.MaxSize = 10 << 20
	}

	uc.Client = &http.Client{
		Timeout:   time.Duration(internalConfig.Proxy.RequestTimeoutSeconds) * time.Second,
		Transport: &http.Transport{MaxIdleConnsPerHost: 100},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errors.New("too many redirects")
			}
			if !hostAllowed(uc.AllowedHosts, req.URL) {
				return fmt.Errorf("redirect to %s is not allowed", req.URL.Host)
			}
			return nil
		},
	}
	return uc
}

func normalizeHosts(hosts []string) []string {
	normalized := make([]string, 0, len(hosts))
	for _, host := range hosts {
		host = strings.ToLower(strings.TrimSpace(host))
		if host != "" {
			normalized = append(normalized, host)
		}
	}
	return normalized
}

// hostAllowed matches either the bare hostname or host:port against the
// list. An entry "*.example.com" matches any subdomain of example.com.
func hostAllowed(hosts []string, target *url.URL) bool {
	hostname := strings.ToLower(target.Hostname())
	hostWithPort := strings.ToLower(target.Host)
	for _, allowed := range hosts {
		if allowed == hostname || allowed == hostWithPort {
			return true
		}
		if suffix, ok := strings.CutPrefix(allowed, "*."); ok && strings.HasSuffix(hostname, "."+suffix) {
			return true
		}
	}
	return false
}

// ValidateURL accepts absolute http(s) URLs on an allowed host.
func (uc *imageUsecase) ValidateURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, exceptions.ErrImageURLInvalid(nil, rawURL)
	}
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, exceptions.ErrImageURLInvalid(err, rawURL)
	}

	scheme := strings.ToLower(target.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, exceptions.ErrImageURLSchemeNotAllowed(nil, target.Scheme)
	}
	if target.Host == "" || target.User != nil {
		return nil, exceptions.ErrImageURLInvalid(nil, rawURL)
	}
	if !hostAllowed(uc.AllowedHosts, target) {
		return nil, exceptions.ErrImageURLHostNotAllowed(nil, target.Host)
	}
	return target, nil
}

func (uc *imageUsecase) Fetch(ctx context.Context, rawURL string, credentials models.BackendCredentials) (*models.ProxiedImage, error) {
	target, err := uc.ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	cacheable := uc.Cache != nil && hostAllowed(uc.CacheableHosts, target)
	cacheKey := target.String()
	if cacheable {
		cached, err := uc.Cache.Get(ctx, cacheKey)
		if err != nil {
			uc.Log.Warn("imageUsecase.Fetch image cache lookup failed",
				zap.String(constvars.LoggingTargetKey, cacheKey),
				zap.Error(err),
			)
		} else if cached != nil {
			return fromBytes(cached.Body, cached.ContentType, true), nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cacheKey, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	// Cacheable hosts only ever see anonymous requests
	if !cacheable {
		if credentials.Cookie != "" {
			req.Header.Set(constvars.HeaderCookie, credentials.Cookie)
		}
		if credentials.Token != "" {
			req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+credentials.Token)
		}
	}

	resp, err := uc.Client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		return nil, exceptions.ErrImageUpstreamStatus(nil, resp.StatusCode)
	}
	if resp.ContentLength > uc.MaxSize {
		resp.Body.Close()
		return nil, exceptions.ErrImageTooLarge(nil, uc.MaxSize)
	}

	contentType := resp.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	// Only a declared size within the cap is streamed. Unsized bodies are
	// buffered so an oversized image fails before any header is written.
	if !cacheable && resp.ContentLength >= 0 {
		return &models.ProxiedImage{
			Body:          limitedBody{Reader: io.LimitReader(resp.Body, uc.MaxSize), Closer: resp.Body},
			ContentType:   contentType,
			ContentLength: resp.ContentLength,
		}, nil
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, uc.MaxSize+1))
	if err != nil {
		return nil, exceptions.ErrReadBody(err)
	}
	if int64(len(body)) > uc.MaxSize {
		return nil, exceptions.ErrImageTooLarge(nil, uc.MaxSize)
	}

	if cacheable {
		err = uc.Cache.Put(ctx, cacheKey, &models.CachedImage{Body: body, ContentType: contentType})
		if err != nil {
			uc.Log.Warn("imageUsecase.Fetch failed to store image in cache",
				zap.String(constvars.LoggingTargetKey, cacheKey),
				zap.Error(err),
			)
		}
	}
	return fromBytes(body, contentType, false), nil
}

func fromBytes(body []byte, contentType string, fromCache bool) *models.ProxiedImage {
	return &models.ProxiedImage{
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentType:   contentType,
		ContentLength: int64(len(body)),
		FromCache:     fromCache,
	}
}

type limitedBody struct {
	io.Reader
	io.Closer
}
