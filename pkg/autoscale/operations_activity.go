package autoscale

import (
	"context"

	"github.com/cloudpeer/autoscale/pkg/autoscale/api"
)

func (c *Client) DescribeScalingActivities(ctx context.Context, req *api.DescribeScalingActivitiesRequest) (*api.DescribeScalingActivitiesResponse, error) {
	var resp api.DescribeScalingActivitiesResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TerminateInstanceInAutoScalingGroup terminates a single instance and
// returns the resulting scaling activity.
func (c *Client) TerminateInstanceInAutoScalingGroup(ctx context.Context, req *api.TerminateInstanceInAutoScalingGroupRequest) (*api.TerminateInstanceInAutoScalingGroupResponse, error) {
	var resp api.TerminateInstanceInAutoScalingGroupResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DescribeAutoScalingInstances(ctx context.Context, req *api.DescribeAutoScalingInstancesRequest) (*api.DescribeAutoScalingInstancesResponse, error) {
	var resp api.DescribeAutoScalingInstancesResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetInstanceHealth explicitly marks an instance Healthy or Unhealthy;
// unhealthy instances are terminated and replaced by the service.
func (c *Client) SetInstanceHealth(ctx context.Context, req *api.SetInstanceHealthRequest) (*api.SetInstanceHealthResponse, error) {
	var resp api.SetInstanceHealthResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
