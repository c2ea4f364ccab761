package license

import "github.com/projecthowly/beatstore-bot-sub000/internal/core/port"

type licenseService struct {
	repo port.LicenseRepository
}

// NewLicenseService creates a new license service
func NewLicenseService(repo port.LicenseRepository) port.LicenseService {
	return &licenseService{repo: repo}
}
