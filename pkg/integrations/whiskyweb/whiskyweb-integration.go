package whiskyweb

import (
	"net/url"
	"strings"

	"go.uber.org/zap"
)

const IntegrationName = "whisky_web"

type WhiskyWebIntegration struct {
	baseURL string
	domain  string
	logger  *zap.Logger
}

func NewWhiskyWebIntegration(baseURL string, logger *zap.Logger) *WhiskyWebIntegration {
	baseURL = strings.TrimSuffix(baseURL, "/")

	var domain string
	if parsed, err := url.Parse(baseURL); err == nil {
		domain = parsed.Hostname()
	}

	return &WhiskyWebIntegration{baseURL: baseURL, domain: domain, logger: logger}
}
