package utils

import (
	"bpa-panel-service/internal/app/models"
	"bpa-panel-service/internal/pkg/constvars"
	"context"
)

// PanelFromContext returns the request panel, or the unknown panel under the
// default base path when none was set.
func PanelFromContext(ctx context.Context) models.PanelContext {
	if panel, ok := ctx.Value(constvars.CONTEXT_PANEL_KEY).(models.PanelContext); ok {
		return panel
	}
	return models.PanelContext{Key: models.PanelUnknown, BasePath: constvars.DefaultBasePath}
}

func PrincipalFromContext(ctx context.Context) *models.Principal {
	if principal, ok := ctx.Value(constvars.CONTEXT_PRINCIPAL_KEY).(*models.Principal); ok && principal != nil {
		return principal
	}
	return models.AnonymousPrincipal()
}

func DeviceIDFromContext(ctx context.Context) string {
	deviceID, _ := ctx.Value(constvars.CONTEXT_DEVICE_ID_KEY).(string)
	return deviceID
}

// StorageOwnerFromContext names the owner of per-caller storage: the
// authenticated subject, else the device id.
func StorageOwnerFromContext(ctx context.Context) string {
	principal := PrincipalFromContext(ctx)
	if principal.IsAuthenticated() {
		return "user:" + principal.Subject
	}
	return "device:" + DeviceIDFromContext(ctx)
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
