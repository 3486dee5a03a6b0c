package shared

import (
	"fmt"
	"net/http"

	"cloud.google.com/go/auth/credentials"
	"cloud.google.com/go/auth/httptransport"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// CloudPlatformScope grants broad access to all GCP resources. Effective
// access is restricted by the IAM permissions of the authenticated account.
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// NewHTTPClient creates an HTTP client authenticated with detected default
// credentials and instrumented with OpenTelemetry. When no scopes are given,
// the cloud-platform scope is used.
func NewHTTPClient(scopes ...string) (*http.Client, error) {
	if len(scopes) == 0 {
		scopes = []string{CloudPlatformScope}
	}

	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		Scopes: scopes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect default credentials: %w", err)
	}

	client, err := httptransport.NewClient(&httptransport.Options{
		Credentials:      creds,
		BaseRoundTripper: otelhttp.NewTransport(nil),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client with credentials: %w", err)
	}

	return client, nil
}
