//go:generate mockgen -destination=./mocks/mock_api.go -package=mocks -source=api.go
package container

import (
	"context"
	"fmt"
	"io"
	"net/http"

	container "google.golang.org/api/container/v1"
)

// API is an interface for the raw GKE and container registry calls used by
// Client.
type API interface {
	GetCluster(ctx context.Context, name string) (*container.Cluster, error)
	ListClusters(ctx context.Context, parent string) ([]*container.Cluster, error)
	GetManifestDigest(ctx context.Context, host, image, reference string) (string, error)
}

type apiService struct {
	svc *container.Service
	hc  *http.Client
}

// NewAPI wraps a GKE service in the API interface. The HTTP client is used
// for container registry manifest requests and must carry credentials for
// the registries it will be pointed at.
func NewAPI(svc *container.Service, hc *http.Client) API {
	return &apiService{svc: svc, hc: hc}
}

func (a *apiService) GetCluster(ctx context.Context, name string) (*container.Cluster, error) {
	return a.svc.Projects.Locations.Clusters.Get(name).Context(ctx).Do()
}

func (a *apiService) ListClusters(ctx context.Context, parent string) ([]*container.Cluster, error) {
	resp, err := a.svc.Projects.Locations.Clusters.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Clusters, nil
}

// GetManifestDigest resolves an image reference to its manifest digest via
// the registry's v2 API, without pulling the manifest body.
func (a *apiService) GetManifestDigest(ctx context.Context, host, image, reference string) (string, error) {
	url := fmt.Sprintf("https://%s/v2/%s/manifests/%s", host, image, reference)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.oci.image.manifest.v1+json,application/vnd.docker.distribution.manifest.v2+json")

	resp, err := a.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("registry %s returned status %d for %s:%s", host, resp.StatusCode, image, reference)
	}

	digest := resp.Header.Get("Docker-Content-Digest")
	if digest == "" {
		return "", fmt.Errorf("registry %s returned no digest for %s:%s", host, image, reference)
	}
	return digest, nil
}
