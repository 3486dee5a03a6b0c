package compute_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	computev1 "google.golang.org/api/compute/v1"

	"github.com/graphite-platforms/gcp-client-go/compute"
	"github.com/graphite-platforms/gcp-client-go/compute/mocks"
	"github.com/graphite-platforms/gcp-client-go/shared"
)

const (
	testProject    = "test-project"
	testZoneLink   = "https://www.googleapis.com/compute/v1/projects/test-project/zones/us-central1-a"
	testRegionLink = "https://www.googleapis.com/compute/v1/projects/test-project/regions/us-central1"
)

func deprecated() *computev1.DeprecationStatus {
	return &computev1.DeprecationStatus{State: "DEPRECATED"}
}

func TestListRegions(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	api.EXPECT().ListRegions(gomock.Any(), testProject).Return([]*computev1.Region{
		{Name: "us-west1"},
		{Name: "europe-west1", Deprecated: deprecated()},
		{Name: "asia-east1"},
		{Name: "us-central1"},
	}, nil)

	regions, err := client.ListRegions(context.Background(), testProject)
	if err != nil {
		t.Fatalf("ListRegions returned unexpected error: %v", err)
	}

	want := []string{"asia-east1", "us-central1", "us-west1"}
	if len(regions) != len(want) {
		t.Fatalf("expected %d regions, got %d", len(want), len(regions))
	}
	for i, name := range want {
		if regions[i].Name != name {
			t.Errorf("region %d: expected %q, got %q", i, name, regions[i].Name)
		}
	}
}

func TestListRegionsValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	_, err := client.ListRegions(context.Background(), "")
	if !errors.Is(err, shared.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestListZones(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	otherRegion := "https://www.googleapis.com/compute/v1/projects/test-project/regions/us-west1"
	api.EXPECT().ListZones(gomock.Any(), testProject).Return([]*computev1.Zone{
		{Name: "us-central1-c", Region: testRegionLink},
		{Name: "us-west1-a", Region: otherRegion},
		{Name: "us-central1-a", Region: testRegionLink},
	}, nil)

	zones, err := client.ListZones(context.Background(), testProject, testRegionLink)
	if err != nil {
		t.Fatalf("ListZones returned unexpected error: %v", err)
	}

	want := []string{"us-central1-a", "us-central1-c"}
	if len(zones) != len(want) {
		t.Fatalf("expected %d zones, got %d", len(want), len(zones))
	}
	for i, name := range want {
		if zones[i].Name != name {
			t.Errorf("zone %d: expected %q, got %q", i, name, zones[i].Name)
		}
	}
}

func TestListZonesEmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	api.EXPECT().ListZones(gomock.Any(), testProject).Return(nil, nil)

	zones, err := client.ListZones(context.Background(), testProject, testRegionLink)
	if err != nil {
		t.Fatalf("ListZones returned unexpected error: %v", err)
	}
	if zones == nil {
		t.Error("expected an empty slice, got nil")
	}
	if len(zones) != 0 {
		t.Errorf("expected no zones, got %d", len(zones))
	}
}

func TestListMachineTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	api.EXPECT().ListMachineTypes(gomock.Any(), testProject, "us-central1-a").Return([]*computev1.MachineType{
		{Name: "n1-standard-2"},
		{Name: "n1-standard-1", Deprecated: deprecated()},
		{Name: "e2-medium"},
	}, nil)

	machineTypes, err := client.ListMachineTypes(context.Background(), testProject, testZoneLink)
	if err != nil {
		t.Fatalf("ListMachineTypes returned unexpected error: %v", err)
	}

	want := []string{"e2-medium", "n1-standard-2"}
	if len(machineTypes) != len(want) {
		t.Fatalf("expected %d machine types, got %d", len(want), len(machineTypes))
	}
	for i, name := range want {
		if machineTypes[i].Name != name {
			t.Errorf("machine type %d: expected %q, got %q", i, name, machineTypes[i].Name)
		}
	}
}

func TestListCPUPlatforms(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	api.EXPECT().GetZone(gomock.Any(), testProject, "us-central1-a").Return(&computev1.Zone{
		Name:                  "us-central1-a",
		AvailableCpuPlatforms: []string{"Intel Skylake", "AMD Rome", "Intel Broadwell"},
	}, nil)

	platforms, err := client.ListCPUPlatforms(context.Background(), testProject, testZoneLink)
	if err != nil {
		t.Fatalf("ListCPUPlatforms returned unexpected error: %v", err)
	}

	want := []string{"AMD Rome", "Intel Broadwell", "Intel Skylake"}
	if len(platforms) != len(want) {
		t.Fatalf("expected %d platforms, got %d", len(want), len(platforms))
	}
	for i, name := range want {
		if platforms[i] != name {
			t.Errorf("platform %d: expected %q, got %q", i, name, platforms[i])
		}
	}
}

func TestListBootDiskTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	api.EXPECT().ListDiskTypes(gomock.Any(), testProject, "us-central1-a").Return([]*computev1.DiskType{
		{Name: "pd-standard"},
		{Name: "local-ssd"},
		{Name: "pd-balanced"},
		{Name: "pd-ssd", Deprecated: deprecated()},
	}, nil)

	diskTypes, err := client.ListBootDiskTypes(context.Background(), testProject, testZoneLink)
	if err != nil {
		t.Fatalf("ListBootDiskTypes returned unexpected error: %v", err)
	}

	want := []string{"pd-balanced", "pd-standard"}
	if len(diskTypes) != len(want) {
		t.Fatalf("expected %d disk types, got %d", len(want), len(diskTypes))
	}
	for i, name := range want {
		if diskTypes[i].Name != name {
			t.Errorf("disk type %d: expected %q, got %q", i, name, diskTypes[i].Name)
		}
	}
}

func TestListImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	api.EXPECT().ListImages(gomock.Any(), testProject).Return([]*computev1.Image{
		{Name: "debian-12"},
		{Name: "debian-9", Deprecated: deprecated()},
		{Name: "debian-11"},
	}, nil)

	images, err := client.ListImages(context.Background(), testProject)
	if err != nil {
		t.Fatalf("ListImages returned unexpected error: %v", err)
	}

	want := []string{"debian-11", "debian-12"}
	if len(images) != len(want) {
		t.Fatalf("expected %d images, got %d", len(want), len(images))
	}
	for i, name := range want {
		if images[i].Name != name {
			t.Errorf("image %d: expected %q, got %q", i, name, images[i].Name)
		}
	}
}

func TestGetImageValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	tests := []struct {
		name      string
		projectID string
		imageName string
	}{
		{name: "empty project", projectID: "", imageName: "debian-12"},
		{name: "empty image", projectID: testProject, imageName: ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := client.GetImage(context.Background(), test.projectID, test.imageName)
			if !errors.Is(err, shared.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestListSubnetworks(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	networkLink := "https://www.googleapis.com/compute/v1/projects/test-project/global/networks/default"
	otherNetwork := "https://www.googleapis.com/compute/v1/projects/test-project/global/networks/other"
	api.EXPECT().ListSubnetworks(gomock.Any(), testProject, "us-central1").Return([]*computev1.Subnetwork{
		{Name: "subnet-b", Network: networkLink},
		{Name: "subnet-c", Network: otherNetwork},
		{Name: "subnet-a", Network: networkLink},
	}, nil)

	subnetworks, err := client.ListSubnetworks(context.Background(), testProject, networkLink, testRegionLink)
	if err != nil {
		t.Fatalf("ListSubnetworks returned unexpected error: %v", err)
	}

	want := []string{"subnet-a", "subnet-b"}
	if len(subnetworks) != len(want) {
		t.Fatalf("expected %d subnetworks, got %d", len(want), len(subnetworks))
	}
	for i, name := range want {
		if subnetworks[i].Name != name {
			t.Errorf("subnetwork %d: expected %q, got %q", i, name, subnetworks[i].Name)
		}
	}
}

func TestListNetworksAPIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAPI(ctrl)
	client := compute.NewClient(api)

	apiErr := errors.New("backend unavailable")
	api.EXPECT().ListNetworks(gomock.Any(), testProject).Return(nil, apiErr)

	_, err := client.ListNetworks(context.Background(), testProject)
	if !errors.Is(err, apiErr) {
		t.Errorf("expected wrapped API error, got %v", err)
	}
}
