package autoscale

import (
	"context"
	"encoding/base64"

	"github.com/cloudpeer/autoscale/pkg/autoscale/api"
)

// CreateLaunchConfiguration creates an immutable template for launching
// instances. UserData is passed as plain text and base64-encoded on the
// wire.
func (c *Client) CreateLaunchConfiguration(ctx context.Context, req *api.CreateLaunchConfigurationRequest) (*api.CreateLaunchConfigurationResponse, error) {
	if req.UserData != nil {
		encoded := base64.StdEncoding.EncodeToString([]byte(*req.UserData))
		withEncoded := *req
		withEncoded.UserData = &encoded
		req = &withEncoded
	}
	var resp api.CreateLaunchConfigurationResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteLaunchConfiguration deletes the named launch configuration. It
// must not be attached to a group.
func (c *Client) DeleteLaunchConfiguration(ctx context.Context, req *api.DeleteLaunchConfigurationRequest) (*api.DeleteLaunchConfigurationResponse, error) {
	var resp api.DeleteLaunchConfigurationResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DescribeLaunchConfigurations(ctx context.Context, req *api.DescribeLaunchConfigurationsRequest) (*api.DescribeLaunchConfigurationsResponse, error) {
	var resp api.DescribeLaunchConfigurationsResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
