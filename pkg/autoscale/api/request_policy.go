package api

type PutScalingPolicyRequest struct {
	PolicyName           string `url:"PolicyName" validate:"required"`
	AutoScalingGroupName string `url:"AutoScalingGroupName" validate:"required"`
	// AdjustmentType is one of ChangeInCapacity, ExactCapacity or
	// PercentChangeInCapacity.
	AdjustmentType string `url:"AdjustmentType" validate:"required"`
	// ScalingAdjustment is negative for scale-in adjustments.
	ScalingAdjustment int  `url:"ScalingAdjustment"`
	Cooldown          *int `url:"Cooldown"`
}

func (r PutScalingPolicyRequest) Action() string { return ActionPutScalingPolicy }

type DeletePolicyRequest struct {
	PolicyName           string  `url:"PolicyName" validate:"required"`
	AutoScalingGroupName *string `url:"AutoScalingGroupName"`
}

func (r DeletePolicyRequest) Action() string { return ActionDeletePolicy }

type DescribePoliciesRequest struct {
	AutoScalingGroupName *string  `url:"AutoScalingGroupName"`
	PolicyNames          []string `url:"PolicyNames"`
	MaxRecords           *int     `url:"MaxRecords"`
	NextToken            *string  `url:"NextToken"`
}

func (r DescribePoliciesRequest) Action() string { return ActionDescribePolicies }

type ExecutePolicyRequest struct {
	PolicyName           string  `url:"PolicyName" validate:"required"`
	AutoScalingGroupName *string `url:"AutoScalingGroupName"`
	HonorCooldown        *bool   `url:"HonorCooldown"`
}

func (r ExecutePolicyRequest) Action() string { return ActionExecutePolicy }

type DescribeAdjustmentTypesRequest struct{}

func (r DescribeAdjustmentTypesRequest) Action() string { return ActionDescribeAdjustmentTypes }

type DescribeMetricCollectionTypesRequest struct{}

func (r DescribeMetricCollectionTypesRequest) Action() string {
	return ActionDescribeMetricCollectionTypes
}

type EnableMetricsCollectionRequest struct {
	AutoScalingGroupName string `url:"AutoScalingGroupName" validate:"required"`
	// Granularity currently only accepts "1Minute".
	Granularity string `url:"Granularity" validate:"required"`
	// Metrics limits collection to the named group metrics. When empty,
	// every metric is enabled.
	Metrics []string `url:"Metrics"`
}

func (r EnableMetricsCollectionRequest) Action() string { return ActionEnableMetricsCollection }

type DisableMetricsCollectionRequest struct {
	AutoScalingGroupName string   `url:"AutoScalingGroupName" validate:"required"`
	Metrics              []string `url:"Metrics"`
}

func (r DisableMetricsCollectionRequest) Action() string { return ActionDisableMetricsCollection }
