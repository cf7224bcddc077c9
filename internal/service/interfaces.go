package service

import (
	"context"

	"github.com/MKhiriev/go-posts/models"
)

// AppInfoService reports static information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
