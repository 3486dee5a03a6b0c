//go:generate mockgen -destination=./mocks/mock_api.go -package=mocks -source=api.go
package resourcemanager

import (
	"context"

	cloudresourcemanager "google.golang.org/api/cloudresourcemanager/v1"
)

// API is an interface for the raw Cloud Resource Manager API calls used by
// Client.
type API interface {
	ListProjects(ctx context.Context) ([]*cloudresourcemanager.Project, error)
}

type apiService struct {
	svc *cloudresourcemanager.Service
}

// NewAPI wraps a Cloud Resource Manager service in the API interface.
func NewAPI(svc *cloudresourcemanager.Service) API {
	return &apiService{svc: svc}
}

func (a *apiService) ListProjects(ctx context.Context) ([]*cloudresourcemanager.Project, error) {
	resp, err := a.svc.Projects.List().Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Projects, nil
}
