package autoscale

import (
	"context"

	"github.com/cloudpeer/autoscale/pkg/autoscale/api"
)

// PutScalingPolicy creates or updates a policy mapping a trigger to a
// capacity adjustment.
func (c *Client) PutScalingPolicy(ctx context.Context, req *api.PutScalingPolicyRequest) (*api.PutScalingPolicyResponse, error) {
	var resp api.PutScalingPolicyResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeletePolicy(ctx context.Context, req *api.DeletePolicyRequest) (*api.DeletePolicyResponse, error) {
	var resp api.DeletePolicyResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DescribePolicies(ctx context.Context, req *api.DescribePoliciesRequest) (*api.DescribePoliciesResponse, error) {
	var resp api.DescribePoliciesResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ExecutePolicy(ctx context.Context, req *api.ExecutePolicyRequest) (*api.ExecutePolicyResponse, error) {
	var resp api.ExecutePolicyResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DescribeAdjustmentTypes(ctx context.Context) (*api.DescribeAdjustmentTypesResponse, error) {
	var resp api.DescribeAdjustmentTypesResponse
	if err := c.do(ctx, api.DescribeAdjustmentTypesRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DescribeMetricCollectionTypes lists the collectable group metrics and
// the granularities they support.
func (c *Client) DescribeMetricCollectionTypes(ctx context.Context) (*api.DescribeMetricCollectionTypesResponse, error) {
	var resp api.DescribeMetricCollectionTypesResponse
	if err := c.do(ctx, api.DescribeMetricCollectionTypesRequest{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EnableMetricsCollection requires instance monitoring to be enabled in
// the group's launch configuration.
func (c *Client) EnableMetricsCollection(ctx context.Context, req *api.EnableMetricsCollectionRequest) (*api.EnableMetricsCollectionResponse, error) {
	var resp api.EnableMetricsCollectionResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DisableMetricsCollection(ctx context.Context, req *api.DisableMetricsCollectionRequest) (*api.DisableMetricsCollectionResponse, error) {
	var resp api.DisableMetricsCollectionResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
