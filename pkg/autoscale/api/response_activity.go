package api

import "time"

type DescribeScalingActivitiesResponse struct {
	ResponseMetadata
	Activities []Activity `xml:"Activities>member"`
	NextToken  *string    `xml:"NextToken"`
}

type TerminateInstanceInAutoScalingGroupResponse struct {
	ResponseMetadata
	Activity *Activity `xml:"Activity"`
}

type DescribeAutoScalingInstancesResponse struct {
	ResponseMetadata
	AutoScalingInstances []Instance `xml:"AutoScalingInstances>member"`
	NextToken            *string    `xml:"NextToken"`
}

type SetInstanceHealthResponse struct {
	ResponseMetadata
}

type Activity struct {
	ActivityID           *string    `xml:"ActivityId"`
	AutoScalingGroupName *string    `xml:"AutoScalingGroupName"`
	Description          *string    `xml:"Description"`
	Cause                *string    `xml:"Cause"`
	StartTime            *time.Time `xml:"StartTime"`
	EndTime              *time.Time `xml:"EndTime"`
	StatusCode           *string    `xml:"StatusCode"`
	StatusMessage        *string    `xml:"StatusMessage"`
	Progress             *int       `xml:"Progress"`
	Details              *string    `xml:"Details"`
}

type Instance struct {
	InstanceID              *string `xml:"InstanceId"`
	AutoScalingGroupName    *string `xml:"AutoScalingGroupName"`
	AvailabilityZone        *string `xml:"AvailabilityZone"`
	LifecycleState          *string `xml:"LifecycleState"`
	HealthStatus            *string `xml:"HealthStatus"`
	LaunchConfigurationName *string `xml:"LaunchConfigurationName"`
}
