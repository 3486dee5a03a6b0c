//go:generate mockgen -destination=./mocks/mock_api.go -package=mocks -source=api.go
package compute

import (
	"context"

	compute "google.golang.org/api/compute/v1"
)

// API is an interface for the raw Compute Engine API calls used by Client.
// It exists to isolate the generated SDK call shape for mocking; no logic
// beyond request construction belongs here.
type API interface {
	ListRegions(ctx context.Context, projectID string) ([]*compute.Region, error)
	GetZone(ctx context.Context, projectID, zone string) (*compute.Zone, error)
	ListZones(ctx context.Context, projectID string) ([]*compute.Zone, error)
	ListMachineTypes(ctx context.Context, projectID, zone string) ([]*compute.MachineType, error)
	ListDiskTypes(ctx context.Context, projectID, zone string) ([]*compute.DiskType, error)
	GetImage(ctx context.Context, projectID, image string) (*compute.Image, error)
	ListImages(ctx context.Context, projectID string) ([]*compute.Image, error)
	ListAcceleratorTypes(ctx context.Context, projectID, zone string) ([]*compute.AcceleratorType, error)
	ListNetworks(ctx context.Context, projectID string) ([]*compute.Network, error)
	ListSubnetworks(ctx context.Context, projectID, region string) ([]*compute.Subnetwork, error)
	InsertInstance(ctx context.Context, projectID, zone string, instance *compute.Instance, sourceTemplateLink string) (*compute.Operation, error)
	DeleteInstance(ctx context.Context, projectID, zone, instanceID string) (*compute.Operation, error)
	GetInstance(ctx context.Context, projectID, zone, instanceID string) (*compute.Instance, error)
	AggregatedListInstances(ctx context.Context, projectID, filter string) (map[string]compute.InstancesScopedList, error)
	SetInstanceMetadata(ctx context.Context, projectID, zone, instanceID string, metadata *compute.Metadata) (*compute.Operation, error)
	SimulateMaintenanceEvent(ctx context.Context, projectID, zone, instanceID string) (*compute.Operation, error)
	GetGuestAttributes(ctx context.Context, projectID, zone, instanceID, queryPath string) (*compute.GuestAttributes, error)
	GetInstanceTemplate(ctx context.Context, projectID, templateName string) (*compute.InstanceTemplate, error)
	ListInstanceTemplates(ctx context.Context, projectID string) ([]*compute.InstanceTemplate, error)
	InsertInstanceTemplate(ctx context.Context, projectID string, template *compute.InstanceTemplate) (*compute.Operation, error)
	DeleteInstanceTemplate(ctx context.Context, projectID, templateName string) (*compute.Operation, error)
	CreateDiskSnapshot(ctx context.Context, projectID, zone, disk string, snapshot *compute.Snapshot) (*compute.Operation, error)
	DeleteSnapshot(ctx context.Context, projectID, snapshotName string) (*compute.Operation, error)
	GetSnapshot(ctx context.Context, projectID, snapshotName string) (*compute.Snapshot, error)
	GetZoneOperation(ctx context.Context, projectID, zone, operationName string) (*compute.Operation, error)
	GetGlobalOperation(ctx context.Context, projectID, operationName string) (*compute.Operation, error)
}

type apiService struct {
	svc *compute.Service
}

// NewAPI wraps a Compute Engine service in the API interface.
func NewAPI(svc *compute.Service) API {
	return &apiService{svc: svc}
}

func (a *apiService) ListRegions(ctx context.Context, projectID string) ([]*compute.Region, error) {
	list, err := a.svc.Regions.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (a *apiService) GetZone(ctx context.Context, projectID, zone string) (*compute.Zone, error) {
	return a.svc.Zones.Get(projectID, zone).Context(ctx).Do()
}

func (a *apiService) ListZones(ctx context.Context, projectID string) ([]*compute.Zone, error) {
	list, err := a.svc.Zones.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (a *apiService) ListMachineTypes(ctx context.Context, projectID, zone string) ([]*compute.MachineType, error) {
	list, err := a.svc.MachineTypes.List(projectID, zone).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (a *apiService) ListDiskTypes(ctx context.Context, projectID, zone string) ([]*compute.DiskType, error) {
	list, err := a.svc.DiskTypes.List(projectID, zone).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (a *apiService) GetImage(ctx context.Context, projectID, image string) (*compute.Image, error) {
	return a.svc.Images.Get(projectID, image).Context(ctx).Do()
}

func (a *apiService) ListImages(ctx context.Context, projectID string) ([]*compute.Image, error) {
	list, err := a.svc.Images.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (a *apiService) ListAcceleratorTypes(ctx context.Context, projectID, zone string) ([]*compute.AcceleratorType, error) {
	list, err := a.svc.AcceleratorTypes.List(projectID, zone).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (a *apiService) ListNetworks(ctx context.Context, projectID string) ([]*compute.Network, error) {
	list, err := a.svc.Networks.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (a *apiService) ListSubnetworks(ctx context.Context, projectID, region string) ([]*compute.Subnetwork, error) {
	list, err := a.svc.Subnetworks.List(projectID, region).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (a *apiService) InsertInstance(ctx context.Context, projectID, zone string, instance *compute.Instance, sourceTemplateLink string) (*compute.Operation, error) {
	call := a.svc.Instances.Insert(projectID, zone, instance)
	if sourceTemplateLink != "" {
		call = call.SourceInstanceTemplate(sourceTemplateLink)
	}
	return call.Context(ctx).Do()
}

func (a *apiService) DeleteInstance(ctx context.Context, projectID, zone, instanceID string) (*compute.Operation, error) {
	return a.svc.Instances.Delete(projectID, zone, instanceID).Context(ctx).Do()
}

func (a *apiService) GetInstance(ctx context.Context, projectID, zone, instanceID string) (*compute.Instance, error) {
	return a.svc.Instances.Get(projectID, zone, instanceID).Context(ctx).Do()
}

func (a *apiService) AggregatedListInstances(ctx context.Context, projectID, filter string) (map[string]compute.InstancesScopedList, error) {
	list, err := a.svc.Instances.AggregatedList(projectID).Filter(filter).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (a *apiService) SetInstanceMetadata(ctx context.Context, projectID, zone, instanceID string, metadata *compute.Metadata) (*compute.Operation, error) {
	return a.svc.Instances.SetMetadata(projectID, zone, instanceID, metadata).Context(ctx).Do()
}

func (a *apiService) SimulateMaintenanceEvent(ctx context.Context, projectID, zone, instanceID string) (*compute.Operation, error) {
	return a.svc.Instances.SimulateMaintenanceEvent(projectID, zone, instanceID).Context(ctx).Do()
}

func (a *apiService) GetGuestAttributes(ctx context.Context, projectID, zone, instanceID, queryPath string) (*compute.GuestAttributes, error) {
	call := a.svc.Instances.GetGuestAttributes(projectID, zone, instanceID)
	if queryPath != "" {
		call = call.QueryPath(queryPath)
	}
	return call.Context(ctx).Do()
}

func (a *apiService) GetInstanceTemplate(ctx context.Context, projectID, templateName string) (*compute.InstanceTemplate, error) {
	return a.svc.InstanceTemplates.Get(projectID, templateName).Context(ctx).Do()
}

func (a *apiService) ListInstanceTemplates(ctx context.Context, projectID string) ([]*compute.InstanceTemplate, error) {
	list, err := a.svc.InstanceTemplates.List(projectID).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (a *apiService) InsertInstanceTemplate(ctx context.Context, projectID string, template *compute.InstanceTemplate) (*compute.Operation, error) {
	return a.svc.InstanceTemplates.Insert(projectID, template).Context(ctx).Do()
}

func (a *apiService) DeleteInstanceTemplate(ctx context.Context, projectID, templateName string) (*compute.Operation, error) {
	return a.svc.InstanceTemplates.Delete(projectID, templateName).Context(ctx).Do()
}

func (a *apiService) CreateDiskSnapshot(ctx context.Context, projectID, zone, disk string, snapshot *compute.Snapshot) (*compute.Operation, error) {
	return a.svc.Disks.CreateSnapshot(projectID, zone, disk, snapshot).Context(ctx).Do()
}

func (a *apiService) DeleteSnapshot(ctx context.Context, projectID, snapshotName string) (*compute.Operation, error) {
	return a.svc.Snapshots.Delete(projectID, snapshotName).Context(ctx).Do()
}

func (a *apiService) GetSnapshot(ctx context.Context, projectID, snapshotName string) (*compute.Snapshot, error) {
	return a.svc.Snapshots.Get(projectID, snapshotName).Context(ctx).Do()
}

func (a *apiService) GetZoneOperation(ctx context.Context, projectID, zone, operationName string) (*compute.Operation, error) {
	return a.svc.ZoneOperations.Get(projectID, zone, operationName).Context(ctx).Do()
}

func (a *apiService) GetGlobalOperation(ctx context.Context, projectID, operationName string) (*compute.Operation, error) {
	return a.svc.GlobalOperations.Get(projectID, operationName).Context(ctx).Do()
}
