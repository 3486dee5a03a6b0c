//go:generate mockgen -destination=./mocks/mock_api.go -package=mocks -source=api.go
package binaryauthorization

import (
	"context"

	binaryauthorization "google.golang.org/api/binaryauthorization/v1beta1"
)

// API is an interface for the raw Binary Authorization API calls used by
// Client.
type API interface {
	ListAttestors(ctx context.Context, parent string) ([]*binaryauthorization.Attestor, error)
	GetAttestor(ctx context.Context, name string) (*binaryauthorization.Attestor, error)
}

type apiService struct {
	svc *binaryauthorization.Service
}

// NewAPI wraps a Binary Authorization service in the API interface.
func NewAPI(svc *binaryauthorization.Service) API {
	return &apiService{svc: svc}
}

func (a *apiService) ListAttestors(ctx context.Context, parent string) ([]*binaryauthorization.Attestor, error) {
	resp, err := a.svc.Projects.Attestors.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Attestors, nil
}

func (a *apiService) GetAttestor(ctx context.Context, name string) (*binaryauthorization.Attestor, error) {
	return a.svc.Projects.Attestors.Get(name).Context(ctx).Do()
}
