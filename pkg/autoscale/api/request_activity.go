package api

type DescribeScalingActivitiesRequest struct {
	AutoScalingGroupName string   `url:"AutoScalingGroupName" validate:"required"`
	ActivityIDs          []string `url:"ActivityIds"`
	MaxRecords           *int     `url:"MaxRecords"`
	NextToken            *string  `url:"NextToken"`
}

func (r DescribeScalingActivitiesRequest) Action() string { return ActionDescribeScalingActivities }

type TerminateInstanceInAutoScalingGroupRequest struct {
	InstanceID                     string `url:"InstanceId" validate:"required"`
	ShouldDecrementDesiredCapacity bool   `url:"ShouldDecrementDesiredCapacity"`
}

func (r TerminateInstanceInAutoScalingGroupRequest) Action() string {
	return ActionTerminateInstanceInAutoScalingGroup
}

type DescribeAutoScalingInstancesRequest struct {
	InstanceIDs []string `url:"InstanceIds"`
	MaxRecords  *int     `url:"MaxRecords"`
	NextToken   *string  `url:"NextToken"`
}

func (r DescribeAutoScalingInstancesRequest) Action() string {
	return ActionDescribeAutoScalingInstances
}

type SetInstanceHealthRequest struct {
	InstanceID string `url:"InstanceId" validate:"required"`
	// HealthStatus is "Healthy" or "Unhealthy".
	HealthStatus             string `url:"HealthStatus" validate:"required,oneof=Healthy Unhealthy"`
	ShouldRespectGracePeriod *bool  `url:"ShouldRespectGracePeriod"`
}

func (r SetInstanceHealthRequest) Action() string { return ActionSetInstanceHealth }
