package controllers

import (
	"bpa-panel-service/internal/pkg/exceptions"
	"bpa-panel-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

func requestContext(r *http.Request, timeoutInSeconds int) (context.Context, context.CancelFunc) {
	if timeoutInSeconds <= 0 {
		timeoutInSeconds = 10
	}
	return context.WithTimeout(r.Context(), time.Duration(timeoutInSeconds)*time.Second)
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
