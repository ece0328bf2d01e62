package api

type CreateAutoScalingGroupRequest struct {
	AutoScalingGroupName    string   `url:"AutoScalingGroupName" validate:"required"`
	LaunchConfigurationName string   `url:"LaunchConfigurationName" validate:"required"`
	MinSize                 int      `url:"MinSize" validate:"gte=0"`
	MaxSize                 int      `url:"MaxSize" validate:"gte=0,gtefield=MinSize"`
	AvailabilityZones       []string `url:"AvailabilityZones" validate:"required,min=1,dive,required"`
	DesiredCapacity         *int     `url:"DesiredCapacity"`
	DefaultCooldown         *int     `url:"DefaultCooldown"`
	HealthCheckType         *string  `url:"HealthCheckType"`
	HealthCheckGracePeriod  *int     `url:"HealthCheckGracePeriod"`
	// LoadBalancerNames can only be set at creation time.
	LoadBalancerNames []string `url:"LoadBalancerNames"`
	PlacementGroup    *string  `url:"PlacementGroup"`
	VPCZoneIdentifier *string  `url:"VPCZoneIdentifier"`
}

func (r CreateAutoScalingGroupRequest) Action() string { return ActionCreateAutoScalingGroup }

type UpdateAutoScalingGroupRequest struct {
	AutoScalingGroupName    string   `url:"AutoScalingGroupName" validate:"required"`
	LaunchConfigurationName *string  `url:"LaunchConfigurationName"`
	MinSize                 *int     `url:"MinSize"`
	MaxSize                 *int     `url:"MaxSize"`
	AvailabilityZones       []string `url:"AvailabilityZones"`
	DesiredCapacity         *int     `url:"DesiredCapacity"`
	DefaultCooldown         *int     `url:"DefaultCooldown"`
	HealthCheckType         *string  `url:"HealthCheckType"`
	HealthCheckGracePeriod  *int     `url:"HealthCheckGracePeriod"`
	PlacementGroup          *string  `url:"PlacementGroup"`
	VPCZoneIdentifier       *string  `url:"VPCZoneIdentifier"`
}

func (r UpdateAutoScalingGroupRequest) Action() string { return ActionUpdateAutoScalingGroup }

type DeleteAutoScalingGroupRequest struct {
	AutoScalingGroupName string `url:"AutoScalingGroupName" validate:"required"`
	ForceDelete          *bool  `url:"ForceDelete"`
}

func (r DeleteAutoScalingGroupRequest) Action() string { return ActionDeleteAutoScalingGroup }

type DescribeAutoScalingGroupsRequest struct {
	AutoScalingGroupNames []string `url:"AutoScalingGroupNames"`
	MaxRecords            *int     `url:"MaxRecords"`
	NextToken             *string  `url:"NextToken"`
}

func (r DescribeAutoScalingGroupsRequest) Action() string { return ActionDescribeAutoScalingGroups }

type SetDesiredCapacityRequest struct {
	AutoScalingGroupName string `url:"AutoScalingGroupName" validate:"required"`
	DesiredCapacity      int    `url:"DesiredCapacity" validate:"gte=0"`
	HonorCooldown        *bool  `url:"HonorCooldown"`
}

func (r SetDesiredCapacityRequest) Action() string { return ActionSetDesiredCapacity }

type SuspendProcessesRequest struct {
	AutoScalingGroupName string `url:"AutoScalingGroupName" validate:"required"`
	// ScalingProcesses limits the suspension to the named processes. When
	// empty, every process is suspended.
	ScalingProcesses []string `url:"ScalingProcesses"`
}

func (r SuspendProcessesRequest) Action() string { return ActionSuspendProcesses }

type ResumeProcessesRequest struct {
	AutoScalingGroupName string   `url:"AutoScalingGroupName" validate:"required"`
	ScalingProcesses     []string `url:"ScalingProcesses"`
}

func (r ResumeProcessesRequest) Action() string { return ActionResumeProcesses }

type DescribeScalingProcessTypesRequest struct{}

func (r DescribeScalingProcessTypesRequest) Action() string { return ActionDescribeScalingProcessTypes }
