package utils

import (
	"bpa-panel-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeSaveRecentLocationRequest(input *requests.SaveRecentLocation) {
	input.ContextKey = strings.TrimSpace(input.ContextKey)
	input.CountryCode = strings.ToUpper(strings.TrimSpace(input.CountryCode))
}

func SanitizeAuthRedirectRequest(input *requests.AuthRedirect) {
	input.Panel = strings.ToLower(strings.TrimSpace(input.Panel))
	input.Action = strings.ToLower(strings.TrimSpace(input.Action))
	input.ReturnTo = strings.TrimSpace(input.ReturnTo)
	input.Next = strings.TrimSpace(input.Next)
}

func SanitizeSaveBranchPreferenceRequest(input *requests.SaveBranchPreference) {
	input.BranchID = strings.TrimSpace(input.BranchID)
}
