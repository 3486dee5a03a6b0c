// Package gcpclient builds convenience clients for the GCP services this
// module wraps, sharing one authenticated HTTP client and user agent across
// them.
package gcpclient

import (
	"context"
	"fmt"
	"net/http"

	binauthzapi "google.golang.org/api/binaryauthorization/v1beta1"
	kmsapi "google.golang.org/api/cloudkms/v1"
	crmapi "google.golang.org/api/cloudresourcemanager/v1"
	computeapi "google.golang.org/api/compute/v1"
	containerapi "google.golang.org/api/container/v1"
	caapi "google.golang.org/api/containeranalysis/v1beta1"
	"google.golang.org/api/option"

	"github.com/graphite-platforms/gcp-client-go/binaryauthorization"
	"github.com/graphite-platforms/gcp-client-go/compute"
	"github.com/graphite-platforms/gcp-client-go/container"
	"github.com/graphite-platforms/gcp-client-go/containeranalysis"
	"github.com/graphite-platforms/gcp-client-go/kms"
	"github.com/graphite-platforms/gcp-client-go/resourcemanager"
	"github.com/graphite-platforms/gcp-client-go/shared"
)

// ClientFactory builds the per-service clients. All clients it creates share
// the factory's HTTP client and report the factory's application name as
// their user agent.
type ClientFactory struct {
	hc            *http.Client
	clientOptions []option.ClientOption
}

// Option configures a ClientFactory.
type Option func(*factoryConfig)

type factoryConfig struct {
	hc       *http.Client
	scopes   []string
	endpoint string
}

// WithHTTPClient supplies a pre-built HTTP client instead of the default one
// backed by application default credentials.
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *factoryConfig) {
		cfg.hc = hc
	}
}

// WithScopes overrides the OAuth scopes the default HTTP client requests.
// Ignored when WithHTTPClient is also given.
func WithScopes(scopes ...string) Option {
	return func(cfg *factoryConfig) {
		cfg.scopes = scopes
	}
}

// WithEndpoint routes all API calls to the given base URL. Intended for
// tests and private service connect setups.
func WithEndpoint(endpoint string) Option {
	return func(cfg *factoryConfig) {
		cfg.endpoint = endpoint
	}
}

// NewClientFactory creates a ClientFactory. The application name is required
// and becomes the user agent of every request the clients make.
func NewClientFactory(ctx context.Context, applicationName string, opts ...Option) (*ClientFactory, error) {
	if err := shared.RequireNonEmpty("applicationName", applicationName); err != nil {
		return nil, err
	}

	cfg := &factoryConfig{
		scopes: []string{shared.CloudPlatformScope},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	hc := cfg.hc
	if hc == nil {
		var err error
		if hc, err = shared.NewHTTPClient(cfg.scopes...); err != nil {
			return nil, fmt.Errorf("building HTTP client: %w", err)
		}
	}

	clientOptions := []option.ClientOption{
		option.WithHTTPClient(hc),
		option.WithUserAgent(applicationName),
	}
	if cfg.endpoint != "" {
		clientOptions = append(clientOptions, option.WithEndpoint(cfg.endpoint))
	}

	return &ClientFactory{hc: hc, clientOptions: clientOptions}, nil
}

// Compute creates a Compute Engine client.
func (f *ClientFactory) Compute(ctx context.Context, opts ...compute.Option) (*compute.Client, error) {
	svc, err := computeapi.NewService(ctx, f.clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating compute service: %w", err)
	}
	return compute.NewClient(compute.NewAPI(svc), opts...), nil
}

// Container creates a GKE client.
func (f *ClientFactory) Container(ctx context.Context) (*container.Client, error) {
	svc, err := containerapi.NewService(ctx, f.clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating container service: %w", err)
	}
	return container.NewClient(container.NewAPI(svc, f.hc)), nil
}

// KMS creates a Cloud KMS client.
func (f *ClientFactory) KMS(ctx context.Context) (*kms.Client, error) {
	svc, err := kmsapi.NewService(ctx, f.clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating cloudkms service: %w", err)
	}
	return kms.NewClient(kms.NewAPI(svc)), nil
}

// BinaryAuthorization creates a Binary Authorization client.
func (f *ClientFactory) BinaryAuthorization(ctx context.Context) (*binaryauthorization.Client, error) {
	svc, err := binauthzapi.NewService(ctx, f.clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating binaryauthorization service: %w", err)
	}
	return binaryauthorization.NewClient(binaryauthorization.NewAPI(svc)), nil
}

// ContainerAnalysis creates a Container Analysis client.
func (f *ClientFactory) ContainerAnalysis(ctx context.Context, opts ...containeranalysis.Option) (*containeranalysis.Client, error) {
	svc, err := caapi.NewService(ctx, f.clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating containeranalysis service: %w", err)
	}
	return containeranalysis.NewClient(containeranalysis.NewAPI(svc), opts...), nil
}

// ResourceManager creates a Cloud Resource Manager client.
func (f *ClientFactory) ResourceManager(ctx context.Context) (*resourcemanager.Client, error) {
	svc, err := crmapi.NewService(ctx, f.clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("creating cloudresourcemanager service: %w", err)
	}
	return resourcemanager.NewClient(resourcemanager.NewAPI(svc)), nil
}
