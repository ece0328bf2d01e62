package autoscale

import (
	"slices"
	"strings"
)

const (
	// APIVersion is the Auto Scaling API version this client speaks.
	APIVersion = "2010-08-01"

	DefaultRegion   = "us-east-1"
	defaultEndpoint = "https://autoscaling.amazonaws.com/"
)

var regionEndpoints = map[string]string{
	"us-east-1":      "autoscaling.us-east-1.amazonaws.com",
	"us-west-1":      "autoscaling.us-west-1.amazonaws.com",
	"eu-west-1":      "autoscaling.eu-west-1.amazonaws.com",
	"ap-northeast-1": "autoscaling.ap-northeast-1.amazonaws.com",
	"ap-southeast-1": "autoscaling.ap-southeast-1.amazonaws.com",
}

type Region struct {
	Name     string
	Endpoint string
}

// Regions returns the regions the Auto Scaling service is available in,
// sorted by name.
func Regions() []Region {
	regions := make([]Region, 0, len(regionEndpoints))
	for name, host := range regionEndpoints {
		regions = append(regions, Region{Name: name, Endpoint: "https://" + host + "/"})
	}
	slices.SortFunc(regions, func(a, b Region) int {
		return strings.Compare(a.Name, b.Name)
	})
	return regions
}

// RegionEndpoint returns the service endpoint for a region, falling back
// to the region-less default endpoint for unknown names.
func RegionEndpoint(name string) string {
	host, ok := regionEndpoints[name]
	if !ok {
		return defaultEndpoint
	}
	return "https://" + host + "/"
}
