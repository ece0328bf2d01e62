package autoscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegions(t *testing.T) {
	t.Parallel()

	regions := Regions()
	assert.Len(t, regions, len(regionEndpoints))
	for i := 1; i < len(regions); i++ {
		assert.Less(t, regions[i-1].Name, regions[i].Name)
	}
}

func TestRegionEndpoint(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://autoscaling.eu-west-1.amazonaws.com/", RegionEndpoint("eu-west-1"))
	assert.Equal(t, defaultEndpoint, RegionEndpoint("mx-central-7"))
}
