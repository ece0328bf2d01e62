package api

import "time"

type CreateLaunchConfigurationResponse struct {
	ResponseMetadata
}

type DeleteLaunchConfigurationResponse struct {
	ResponseMetadata
}

type DescribeLaunchConfigurationsResponse struct {
	ResponseMetadata
	LaunchConfigurations []LaunchConfiguration `xml:"LaunchConfigurations>member"`
	NextToken            *string               `xml:"NextToken"`
}

type LaunchConfiguration struct {
	LaunchConfigurationName *string              `xml:"LaunchConfigurationName"`
	LaunchConfigurationARN  *string              `xml:"LaunchConfigurationARN"`
	ImageID                 *string              `xml:"ImageId"`
	InstanceType            *string              `xml:"InstanceType"`
	KeyName                 *string              `xml:"KeyName"`
	SecurityGroups          []string             `xml:"SecurityGroups>member"`
	UserData                *string              `xml:"UserData"`
	KernelID                *string              `xml:"KernelId"`
	RamdiskID               *string              `xml:"RamdiskId"`
	BlockDeviceMappings     []BlockDeviceMapping `xml:"BlockDeviceMappings>member"`
	InstanceMonitoring      *InstanceMonitoring  `xml:"InstanceMonitoring"`
	CreatedTime             *time.Time           `xml:"CreatedTime"`
}

type InstanceMonitoring struct {
	Enabled *bool `xml:"Enabled"`
}
