package api

import "time"

type PutScheduledUpdateGroupActionResponse struct {
	ResponseMetadata
}

type DeleteScheduledActionResponse struct {
	ResponseMetadata
}

type DescribeScheduledActionsResponse struct {
	ResponseMetadata
	ScheduledUpdateGroupActions []ScheduledUpdateGroupAction `xml:"ScheduledUpdateGroupActions>member"`
	NextToken                   *string                      `xml:"NextToken"`
}

type ScheduledUpdateGroupAction struct {
	AutoScalingGroupName *string    `xml:"AutoScalingGroupName"`
	ScheduledActionName  *string    `xml:"ScheduledActionName"`
	ScheduledActionARN   *string    `xml:"ScheduledActionARN"`
	Time                 *time.Time `xml:"Time"`
	DesiredCapacity      *int       `xml:"DesiredCapacity"`
	MinSize              *int       `xml:"MinSize"`
	MaxSize              *int       `xml:"MaxSize"`
}
