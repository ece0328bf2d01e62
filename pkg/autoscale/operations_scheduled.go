package autoscale

import (
	"context"

	"github.com/cloudpeer/autoscale/pkg/autoscale/api"
)

// PutScheduledUpdateGroupAction schedules a one-time capacity change for
// a group. Unset size fields keep their current value when the action
// runs.
func (c *Client) PutScheduledUpdateGroupAction(ctx context.Context, req *api.PutScheduledUpdateGroupActionRequest) (*api.PutScheduledUpdateGroupActionResponse, error) {
	var resp api.PutScheduledUpdateGroupActionResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DescribeScheduledActions(ctx context.Context, req *api.DescribeScheduledActionsRequest) (*api.DescribeScheduledActionsResponse, error) {
	var resp api.DescribeScheduledActionsResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) DeleteScheduledAction(ctx context.Context, req *api.DeleteScheduledActionRequest) (*api.DeleteScheduledActionResponse, error) {
	var resp api.DeleteScheduledActionResponse
	if err := c.do(ctx, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
