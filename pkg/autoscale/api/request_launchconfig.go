package api

type CreateLaunchConfigurationRequest struct {
	LaunchConfigurationName string   `url:"LaunchConfigurationName" validate:"required"`
	ImageID                 string   `url:"ImageId" validate:"required"`
	InstanceType            string   `url:"InstanceType" validate:"required"`
	KeyName                 *string  `url:"KeyName"`
	SecurityGroups          []string `url:"SecurityGroups"`
	// UserData is base64-encoded by the client before sending.
	UserData            *string              `url:"UserData"`
	KernelID            *string              `url:"KernelId"`
	RamdiskID           *string              `url:"RamdiskId"`
	BlockDeviceMappings []BlockDeviceMapping `url:"BlockDeviceMappings"`
	// InstanceMonitoring uses a flattened wire name rather than the usual
	// indexed member convention.
	InstanceMonitoringEnabled *bool `url:"InstanceMonitoring.member.Enabled"`
}

func (r CreateLaunchConfigurationRequest) Action() string { return ActionCreateLaunchConfiguration }

type DeleteLaunchConfigurationRequest struct {
	LaunchConfigurationName string `url:"LaunchConfigurationName" validate:"required"`
}

func (r DeleteLaunchConfigurationRequest) Action() string { return ActionDeleteLaunchConfiguration }

type DescribeLaunchConfigurationsRequest struct {
	LaunchConfigurationNames []string `url:"LaunchConfigurationNames"`
	MaxRecords               *int     `url:"MaxRecords"`
	NextToken                *string  `url:"NextToken"`
}

func (r DescribeLaunchConfigurationsRequest) Action() string {
	return ActionDescribeLaunchConfigurations
}

// BlockDeviceMapping is shared between launch configuration requests and
// responses.
type BlockDeviceMapping struct {
	DeviceName  *string `url:"DeviceName" xml:"DeviceName"`
	VirtualName *string `url:"VirtualName" xml:"VirtualName"`
	EBS         *EBS    `url:"Ebs" xml:"Ebs"`
}

type EBS struct {
	SnapshotID *string `url:"SnapshotId" xml:"SnapshotId"`
	VolumeSize *int    `url:"VolumeSize" xml:"VolumeSize"`
}
