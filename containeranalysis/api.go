//go:generate mockgen -destination=./mocks/mock_api.go -package=mocks -source=api.go
package containeranalysis

import (
	"context"

	containeranalysis "google.golang.org/api/containeranalysis/v1beta1"
)

// API is an interface for the raw Container Analysis API calls used by
// Client.
type API interface {
	ListOccurrences(ctx context.Context, parent, filter string) ([]*containeranalysis.Occurrence, error)
	GetOccurrence(ctx context.Context, name string) (*containeranalysis.Occurrence, error)
	CreateOccurrence(ctx context.Context, parent string, occurrence *containeranalysis.Occurrence) (*containeranalysis.Occurrence, error)
}

type apiService struct {
	svc *containeranalysis.Service
}

// NewAPI wraps a Container Analysis service in the API interface.
func NewAPI(svc *containeranalysis.Service) API {
	return &apiService{svc: svc}
}

func (a *apiService) ListOccurrences(ctx context.Context, parent, filter string) ([]*containeranalysis.Occurrence, error) {
	resp, err := a.svc.Projects.Occurrences.List(parent).Filter(filter).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Occurrences, nil
}

func (a *apiService) GetOccurrence(ctx context.Context, name string) (*containeranalysis.Occurrence, error) {
	return a.svc.Projects.Occurrences.Get(name).Context(ctx).Do()
}

func (a *apiService) CreateOccurrence(ctx context.Context, parent string, occurrence *containeranalysis.Occurrence) (*containeranalysis.Occurrence, error) {
	return a.svc.Projects.Occurrences.Create(parent, occurrence).Context(ctx).Do()
}
