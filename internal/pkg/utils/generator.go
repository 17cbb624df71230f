package utils

import (
	"bpa-panel-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateDeviceID() string {
	return uuid.NewString()
}

// IsValidDeviceID rejects anything that is not a UUID so the device cookie
// cannot be used to address arbitrary storage keys.
func IsValidDeviceID(deviceID string) bool {
	_, err := uuid.Parse(deviceID)
	return err == nil
}
