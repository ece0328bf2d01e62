package autoscale

import (
	"context"

	"github.com/cloudpeer/autoscale/pkg/autoscale/api"
)

// CreateAutoScalingGroup creates a group backed by an existing launch
// configuration. Load balancers can only be associated here, not through
// UpdateAutoScalingGroup.
func (c *Client) CreateAutoScalingGroup(ctx context.Context, req *api.CreateAutoScalingGroupRequest) (*api.CreateAutoScalingGroupResponse, error) {
	var resp api.CreateAutoScalingGroupResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateAutoScalingGroup updates the named group. Fields left nil keep
// their current value.
func (c *Client) UpdateAutoScalingGroup(ctx context.Context, req *api.UpdateAutoScalingGroupRequest) (*api.UpdateAutoScalingGroupResponse, error) {
	var resp api.UpdateAutoScalingGroupResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAutoScalingGroup deletes the named group. The service rejects the
// call while the group still has instances or in-progress activities
// unless ForceDelete is set.
func (c *Client) DeleteAutoScalingGroup(ctx context.Context, req *api.DeleteAutoScalingGroupRequest) (*api.DeleteAutoScalingGroupResponse, error) {
	var resp api.DeleteAutoScalingGroupResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DescribeAutoScalingGroups returns a full description of the named
// groups, or of all groups when no names are given. A NextToken in the
// response means more pages are available.
func (c *Client) DescribeAutoScalingGroups(ctx context.Context, req *api.DescribeAutoScalingGroupsRequest) (*api.DescribeAutoScalingGroupsResponse, error) {
	var resp api.DescribeAutoScalingGroupsResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SetDesiredCapacity(ctx context.Context, req *api.SetDesiredCapacityRequest) (*api.SetDesiredCapacityResponse, error) {
	var resp api.SetDesiredCapacityResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SuspendProcesses(ctx context.Context, req *api.SuspendProcessesRequest) (*api.SuspendProcessesResponse, error) {
	var resp api.SuspendProcessesResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResumeProcesses(ctx context.Context, req *api.ResumeProcessesRequest) (*api.ResumeProcessesResponse, error) {
	var resp api.ResumeProcessesResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DescribeScalingProcessTypes lists the process names accepted by
// SuspendProcesses and ResumeProcesses.
func (c *Client) DescribeScalingProcessTypes(ctx context.Context) (*api.DescribeScalingProcessTypesResponse, error) {
	var resp api.DescribeScalingProcessTypesResponse
	if err := c.do(ctx, api.DescribeScalingProcessTypesRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
