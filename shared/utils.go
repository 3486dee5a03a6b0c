package shared

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var instanceSelfLinkRegexp = regexp.MustCompile(
	`https://www\.googleapis\.com/compute/v1/projects/([0-9a-zA-Z-]+)/zones/([a-z0-9-]+)/instances/([0-9a-zA-Z-]+)`)

// ProcessResourceList filters a list of GCP resources with keep and sorts it
// with less. The input is never mutated. A nil keep retains every element.
// A nil or empty input yields an empty, non-nil result.
func ProcessResourceList[T any](items []T, keep func(T) bool, less func(a, b T) bool) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if keep == nil || keep(item) {
			result = append(result, item)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j])
	})

	return result
}

// SortResourceList sorts a list of GCP resources with less, keeping every
// element. See ProcessResourceList.
func SortResourceList[T any](items []T, less func(a, b T) bool) []T {
	return ProcessResourceList(items, nil, less)
}

// NameFromSelfLink returns the trailing path segment of a GCP resource self
// link, e.g. "projects/p/zones/us-west1-a" yields "us-west1-a". A bare name
// without any "/" is returned unchanged.
func NameFromSelfLink(selfLink string) (string, error) {
	if selfLink == "" {
		return "", fmt.Errorf("%w: self link must not be empty", ErrInvalidArgument)
	}
	return selfLink[strings.LastIndex(selfLink, "/")+1:], nil
}

// BuildLabelsFilterString converts a map of GCP labels into the legacy filter
// expression used by aggregated list requests, a space-separated sequence of
// "(labels.key eq value)" clauses. Keys are emitted in sorted order so the
// result is deterministic.
func BuildLabelsFilterString(labels map[string]string) string {
	var sb strings.Builder
	for _, key := range sortedKeys(labels) {
		fmt.Fprintf(&sb, "(labels.%s eq %s) ", key, labels[key])
	}
	return strings.TrimSpace(sb.String())
}

// BuildFilterString converts a map of filters into a query filter expression
// of the form `key="value" AND key2="value2"`. Keys are emitted in sorted
// order so the result is deterministic.
func BuildFilterString(filters map[string]string) string {
	clauses := make([]string, 0, len(filters))
	for _, key := range sortedKeys(filters) {
		clauses = append(clauses, fmt.Sprintf("%s=%q", key, filters[key]))
	}
	return strings.Join(clauses, " AND ")
}

// InstanceSelfLink holds the resource data parsed from a compute instance
// self link URL.
type InstanceSelfLink struct {
	ProjectID string
	Zone      string
	Name      string
}

// ParseInstanceSelfLink extracts the project, zone and instance name from a
// fully qualified instance self link such as
// "https://www.googleapis.com/compute/v1/projects/p/zones/us-west1-a/instances/example".
func ParseInstanceSelfLink(selfLink string) (*InstanceSelfLink, error) {
	if selfLink == "" {
		return nil, fmt.Errorf("%w: self link must not be empty", ErrInvalidArgument)
	}

	matches := instanceSelfLinkRegexp.FindStringSubmatch(selfLink)
	if matches == nil {
		return nil, fmt.Errorf("%w: %q is not an instance self link", ErrInvalidArgument, selfLink)
	}

	return &InstanceSelfLink{
		ProjectID: matches[1],
		Zone:      matches[2],
		Name:      matches[3],
	}, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
