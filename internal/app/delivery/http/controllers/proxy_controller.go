package controllers

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"bpa-panel-service/internal/pkg/utils"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

type ProxyController struct {
	Log            *zap.Logger
	ImageUsecase   contracts.ImageUsecase
	InternalConfig *config.InternalConfig
}

func NewProxyController(logger *zap.Logger, imageUsecase contracts.ImageUsecase, internalConfig *config.InternalConfig) *ProxyController {
	return &ProxyController{
		Log:            logger,
		ImageUsecase:   imageUsecase,
		InternalConfig: internalConfig,
	}
}

// ProxyImage streams an allow-listed remote image back to the browser with
// the caller's credentials forwarded.
func (ctrl *ProxyController) ProxyImage(w http.ResponseWriter, r *http.Request) {
	target := r.URL.Query().Get(constvars.URLQueryParamURL)
	credentials := models.BackendCredentials{
		Token:  utils.ExtractBearerToken(r),
		Cookie: r.Header.Get(constvars.HeaderCookie),
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.Proxy.RequestTimeoutSeconds)
	defer cancel()

	image, err := ctrl.ImageUsecase.Fetch(ctx, target, credentials)
	if err != nil {
		ctrl.Log.Warn("ProxyController.ProxyImage fetch failed",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.String(constvars.LoggingTargetKey, target),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}
	defer image.Body.Close()

	maxAge := ctrl.InternalConfig.Proxy.CacheMaxAgeSeconds
	if maxAge <= 0 {
		maxAge = 300
	}

	w.Header().Set(constvars.HeaderContentType, image.ContentType)
	if image.ContentLength >= 0 {
		w.Header().Set(constvars.HeaderContentLength, strconv.FormatInt(image.ContentLength, 10))
	}
	// Cross-origin callers get the origin the CORS middleware echoed back
	if r.Header.Get(constvars.HeaderOrigin) == "" {
		w.Header().Set(constvars.HeaderAccessControlAllowOrigin, "*")
	}
	w.Header().Set(constvars.HeaderCacheControl, fmt.Sprintf("private, max-age=%d", maxAge))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(constvars.StatusOK)

	written, err := io.Copy(w, image.Body)
	if err != nil {
		// Headers are already out, the client sees a truncated body
		ctrl.Log.Warn("ProxyController.ProxyImage copy interrupted",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.String(constvars.LoggingTargetKey, target),
			zap.Int64(constvars.LoggingCountKey, written),
			zap.Error(err),
		)
	}
}
