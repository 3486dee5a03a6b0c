//go:generate mockgen -destination=./mocks/mock_api.go -package=mocks -source=api.go
package kms

import (
	"context"

	cloudkms "google.golang.org/api/cloudkms/v1"
)

// API is an interface for the raw Cloud KMS API calls used by Client.
type API interface {
	ListLocations(ctx context.Context, name string) ([]*cloudkms.Location, error)
	ListKeyRings(ctx context.Context, parent string) ([]*cloudkms.KeyRing, error)
	ListCryptoKeys(ctx context.Context, parent string) ([]*cloudkms.CryptoKey, error)
	GetCryptoKey(ctx context.Context, name string) (*cloudkms.CryptoKey, error)
	ListCryptoKeyVersions(ctx context.Context, parent string) ([]*cloudkms.CryptoKeyVersion, error)
	GetCryptoKeyVersion(ctx context.Context, name string) (*cloudkms.CryptoKeyVersion, error)
	GetPublicKey(ctx context.Context, name string) (*cloudkms.PublicKey, error)
	AsymmetricSign(ctx context.Context, name string, req *cloudkms.AsymmetricSignRequest) (*cloudkms.AsymmetricSignResponse, error)
}

type apiService struct {
	svc *cloudkms.Service
}

// NewAPI wraps a Cloud KMS service in the API interface.
func NewAPI(svc *cloudkms.Service) API {
	return &apiService{svc: svc}
}

func (a *apiService) ListLocations(ctx context.Context, name string) ([]*cloudkms.Location, error) {
	resp, err := a.svc.Projects.Locations.List(name).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Locations, nil
}

func (a *apiService) ListKeyRings(ctx context.Context, parent string) ([]*cloudkms.KeyRing, error) {
	resp, err := a.svc.Projects.Locations.KeyRings.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.KeyRings, nil
}

func (a *apiService) ListCryptoKeys(ctx context.Context, parent string) ([]*cloudkms.CryptoKey, error) {
	resp, err := a.svc.Projects.Locations.KeyRings.CryptoKeys.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.CryptoKeys, nil
}

func (a *apiService) GetCryptoKey(ctx context.Context, name string) (*cloudkms.CryptoKey, error) {
	return a.svc.Projects.Locations.KeyRings.CryptoKeys.Get(name).Context(ctx).Do()
}

func (a *apiService) ListCryptoKeyVersions(ctx context.Context, parent string) ([]*cloudkms.CryptoKeyVersion, error) {
	resp, err := a.svc.Projects.Locations.KeyRings.CryptoKeys.CryptoKeyVersions.List(parent).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.CryptoKeyVersions, nil
}

func (a *apiService) GetCryptoKeyVersion(ctx context.Context, name string) (*cloudkms.CryptoKeyVersion, error) {
	return a.svc.Projects.Locations.KeyRings.CryptoKeys.CryptoKeyVersions.Get(name).Context(ctx).Do()
}

func (a *apiService) GetPublicKey(ctx context.Context, name string) (*cloudkms.PublicKey, error) {
	return a.svc.Projects.Locations.KeyRings.CryptoKeys.CryptoKeyVersions.GetPublicKey(name).Context(ctx).Do()
}

func (a *apiService) AsymmetricSign(ctx context.Context, name string, req *cloudkms.AsymmetricSignRequest) (*cloudkms.AsymmetricSignResponse, error) {
	return a.svc.Projects.Locations.KeyRings.CryptoKeys.CryptoKeyVersions.AsymmetricSign(name, req).Context(ctx).Do()
}
