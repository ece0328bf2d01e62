package api

import "time"

type PutScheduledUpdateGroupActionRequest struct {
	AutoScalingGroupName string    `url:"AutoScalingGroupName" validate:"required"`
	ScheduledActionName  string    `url:"ScheduledActionName" validate:"required"`
	Time                 time.Time `url:"Time" validate:"required"`
	DesiredCapacity      *int      `url:"DesiredCapacity"`
	MinSize              *int      `url:"MinSize"`
	MaxSize              *int      `url:"MaxSize"`
}

func (r PutScheduledUpdateGroupActionRequest) Action() string {
	return ActionPutScheduledUpdateGroupAction
}

type DescribeScheduledActionsRequest struct {
	AutoScalingGroupName *string    `url:"AutoScalingGroupName"`
	ScheduledActionNames []string   `url:"ScheduledActionNames"`
	StartTime            *time.Time `url:"StartTime"`
	EndTime              *time.Time `url:"EndTime"`
	MaxRecords           *int       `url:"MaxRecords"`
	NextToken            *string    `url:"NextToken"`
}

func (r DescribeScheduledActionsRequest) Action() string { return ActionDescribeScheduledActions }

type DeleteScheduledActionRequest struct {
	ScheduledActionName  string  `url:"ScheduledActionName" validate:"required"`
	AutoScalingGroupName *string `url:"AutoScalingGroupName"`
}

func (r DeleteScheduledActionRequest) Action() string { return ActionDeleteScheduledAction }
