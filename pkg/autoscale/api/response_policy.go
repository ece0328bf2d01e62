package api

type PutScalingPolicyResponse struct {
	ResponseMetadata
	PolicyARN *string `xml:"PolicyARN"`
}

type DeletePolicyResponse struct {
	ResponseMetadata
}

type ExecutePolicyResponse struct {
	ResponseMetadata
}

type EnableMetricsCollectionResponse struct {
	ResponseMetadata
}

type DisableMetricsCollectionResponse struct {
	ResponseMetadata
}

type DescribePoliciesResponse struct {
	ResponseMetadata
	ScalingPolicies []ScalingPolicy `xml:"ScalingPolicies>member"`
	NextToken       *string         `xml:"NextToken"`
}

type DescribeAdjustmentTypesResponse struct {
	ResponseMetadata
	AdjustmentTypes []AdjustmentType `xml:"AdjustmentTypes>member"`
}

type DescribeMetricCollectionTypesResponse struct {
	ResponseMetadata
	Metrics       []MetricCollectionType  `xml:"Metrics>member"`
	Granularities []MetricGranularityType `xml:"Granularities>member"`
}

type ScalingPolicy struct {
	PolicyName           *string `xml:"PolicyName"`
	PolicyARN            *string `xml:"PolicyARN"`
	AutoScalingGroupName *string `xml:"AutoScalingGroupName"`
	AdjustmentType       *string `xml:"AdjustmentType"`
	ScalingAdjustment    *int    `xml:"ScalingAdjustment"`
	Cooldown             *int    `xml:"Cooldown"`
	Alarms               []Alarm `xml:"Alarms>member"`
}

type Alarm struct {
	AlarmName *string `xml:"AlarmName"`
	AlarmARN  *string `xml:"AlarmARN"`
}

type AdjustmentType struct {
	AdjustmentType *string `xml:"AdjustmentType"`
}

type MetricCollectionType struct {
	Metric *string `xml:"Metric"`
}

type MetricGranularityType struct {
	Granularity *string `xml:"Granularity"`
}
