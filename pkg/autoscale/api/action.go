// Package api defines the typed request and response model for the Auto
// Scaling query API (version 2010-08-01).
package api

const (
	ActionCreateAutoScalingGroup              = "CreateAutoScalingGroup"
	ActionUpdateAutoScalingGroup              = "UpdateAutoScalingGroup"
	ActionDeleteAutoScalingGroup              = "DeleteAutoScalingGroup"
	ActionDescribeAutoScalingGroups           = "DescribeAutoScalingGroups"
	ActionSetDesiredCapacity                  = "SetDesiredCapacity"
	ActionSuspendProcesses                    = "SuspendProcesses"
	ActionResumeProcesses                     = "ResumeProcesses"
	ActionDescribeScalingProcessTypes         = "DescribeScalingProcessTypes"
	ActionCreateLaunchConfiguration           = "CreateLaunchConfiguration"
	ActionDeleteLaunchConfiguration           = "DeleteLaunchConfiguration"
	ActionDescribeLaunchConfigurations        = "DescribeLaunchConfigurations"
	ActionPutScalingPolicy                    = "PutScalingPolicy"
	ActionDeletePolicy                        = "DeletePolicy"
	ActionDescribePolicies                    = "DescribePolicies"
	ActionExecutePolicy                       = "ExecutePolicy"
	ActionDescribeAdjustmentTypes             = "DescribeAdjustmentTypes"
	ActionDescribeMetricCollectionTypes       = "DescribeMetricCollectionTypes"
	ActionEnableMetricsCollection             = "EnableMetricsCollection"
	ActionDisableMetricsCollection            = "DisableMetricsCollection"
	ActionDescribeScalingActivities           = "DescribeScalingActivities"
	ActionTerminateInstanceInAutoScalingGroup = "TerminateInstanceInAutoScalingGroup"
	ActionDescribeAutoScalingInstances        = "DescribeAutoScalingInstances"
	ActionSetInstanceHealth                   = "SetInstanceHealth"
	ActionPutScheduledUpdateGroupAction       = "PutScheduledUpdateGroupAction"
	ActionDescribeScheduledActions            = "DescribeScheduledActions"
	ActionDeleteScheduledAction               = "DeleteScheduledAction"
)

// Request is implemented by every operation input and reports the wire
// action name the request maps to.
type Request interface {
	Action() string
}
