package api

import "time"

type CreateAutoScalingGroupResponse struct {
	ResponseMetadata
}

type UpdateAutoScalingGroupResponse struct {
	ResponseMetadata
}

type DeleteAutoScalingGroupResponse struct {
	ResponseMetadata
}

type SetDesiredCapacityResponse struct {
	ResponseMetadata
}

type SuspendProcessesResponse struct {
	ResponseMetadata
}

type ResumeProcessesResponse struct {
	ResponseMetadata
}

type DescribeAutoScalingGroupsResponse struct {
	ResponseMetadata
	AutoScalingGroups []AutoScalingGroup `xml:"AutoScalingGroups>member"`
	NextToken         *string            `xml:"NextToken"`
}

type DescribeScalingProcessTypesResponse struct {
	ResponseMetadata
	Processes []ProcessType `xml:"Processes>member"`
}

type AutoScalingGroup struct {
	AutoScalingGroupName    *string            `xml:"AutoScalingGroupName"`
	AutoScalingGroupARN     *string            `xml:"AutoScalingGroupARN"`
	LaunchConfigurationName *string            `xml:"LaunchConfigurationName"`
	MinSize                 *int               `xml:"MinSize"`
	MaxSize                 *int               `xml:"MaxSize"`
	DesiredCapacity         *int               `xml:"DesiredCapacity"`
	DefaultCooldown         *int               `xml:"DefaultCooldown"`
	AvailabilityZones       []string           `xml:"AvailabilityZones>member"`
	LoadBalancerNames       []string           `xml:"LoadBalancerNames>member"`
	HealthCheckType         *string            `xml:"HealthCheckType"`
	HealthCheckGracePeriod  *int               `xml:"HealthCheckGracePeriod"`
	Instances               []Instance         `xml:"Instances>member"`
	CreatedTime             *time.Time         `xml:"CreatedTime"`
	SuspendedProcesses      []SuspendedProcess `xml:"SuspendedProcesses>member"`
	EnabledMetrics          []EnabledMetric    `xml:"EnabledMetrics>member"`
	PlacementGroup          *string            `xml:"PlacementGroup"`
	VPCZoneIdentifier       *string            `xml:"VPCZoneIdentifier"`
}

type SuspendedProcess struct {
	ProcessName      *string `xml:"ProcessName"`
	SuspensionReason *string `xml:"SuspensionReason"`
}

type EnabledMetric struct {
	Metric      *string `xml:"Metric"`
	Granularity *string `xml:"Granularity"`
}

// ProcessType names a scaling process usable with SuspendProcesses and
// ResumeProcesses.
type ProcessType struct {
	ProcessName *string `xml:"ProcessName"`
}
