package autoscale

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudpeer/autoscale/pkg/autoscale/api"
)

type staticCredentials struct{}

func (staticCredentials) Retrieve(context.Context) (aws.Credentials, error) {
	return aws.Credentials{
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "wJalrXUtnFEMI",
	}, nil
}

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := New(context.Background(),
		WithRegion("us-east-1"),
		WithEndpoint(server.URL+"/"),
		WithCredentialsProvider(staticCredentials{}),
	)
	require.NoError(t, err)
	return client
}

func statusBody(action, requestID string) string {
	return fmt.Sprintf(`<%sResponse xmlns="http://autoscaling.amazonaws.com/doc/2010-08-01/">
  <ResponseMetadata><RequestId>%s</RequestId></ResponseMetadata>
</%sResponse>`, action, requestID, action)
}

func TestCreateAutoScalingGroupEncodesParameters(t *testing.T) {
	t.Parallel()

	var form map[string][]string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		assert.Contains(t, r.Header.Get("Authorization"), "AWS4-HMAC-SHA256")
		assert.Contains(t, r.Header.Get("User-Agent"), "autoscale/")
		assert.NotEmpty(t, r.Header.Get("Amz-Sdk-Invocation-Id"))
		fmt.Fprint(w, statusBody("CreateAutoScalingGroup", "req-create"))
	})

	cooldown := 300
	resp, err := client.CreateAutoScalingGroup(context.Background(), &api.CreateAutoScalingGroupRequest{
		AutoScalingGroupName:    "web",
		LaunchConfigurationName: "web-lc",
		MinSize:                 1,
		MaxSize:                 4,
		AvailabilityZones:       []string{"us-east-1a", "us-east-1b"},
		DefaultCooldown:         &cooldown,
		LoadBalancerNames:       []string{"web-elb"},
	})
	require.NoError(t, err)
	assert.Equal(t, "req-create", resp.RequestID)

	assert.Equal(t, []string{"CreateAutoScalingGroup"}, form["Action"])
	assert.Equal(t, []string{APIVersion}, form["Version"])
	assert.Equal(t, []string{"web"}, form["AutoScalingGroupName"])
	assert.Equal(t, []string{"web-lc"}, form["LaunchConfigurationName"])
	assert.Equal(t, []string{"1"}, form["MinSize"])
	assert.Equal(t, []string{"4"}, form["MaxSize"])
	assert.Equal(t, []string{"us-east-1a"}, form["AvailabilityZones.member.1"])
	assert.Equal(t, []string{"us-east-1b"}, form["AvailabilityZones.member.2"])
	assert.Equal(t, []string{"web-elb"}, form["LoadBalancerNames.member.1"])
	assert.Equal(t, []string{"300"}, form["DefaultCooldown"])

	// Unset optionals never reach the wire.
	assert.NotContains(t, form, "DesiredCapacity")
	assert.NotContains(t, form, "VPCZoneIdentifier")
	assert.NotContains(t, form, "HealthCheckType")
}

func TestDescribeAutoScalingGroupsRoundTrip(t *testing.T) {
	t.Parallel()

	// The server stores the zones it receives on create and echoes them
	// back on describe; the decoded zones must preserve the order that
	// was encoded.
	var zones []string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		switch r.PostForm.Get("Action") {
		case "CreateAutoScalingGroup":
			for i := 1; ; i++ {
				zone := r.PostForm.Get(fmt.Sprintf("AvailabilityZones.member.%d", i))
				if zone == "" {
					break
				}
				zones = append(zones, zone)
			}
			fmt.Fprint(w, statusBody("CreateAutoScalingGroup", "req-1"))
		case "DescribeAutoScalingGroups":
			var sb strings.Builder
			sb.WriteString(`<DescribeAutoScalingGroupsResponse xmlns="http://autoscaling.amazonaws.com/doc/2010-08-01/">`)
			sb.WriteString(`<DescribeAutoScalingGroupsResult><AutoScalingGroups><member>`)
			sb.WriteString(`<AutoScalingGroupName>web</AutoScalingGroupName><AvailabilityZones>`)
			for _, zone := range zones {
				sb.WriteString("<member>" + zone + "</member>")
			}
			sb.WriteString(`</AvailabilityZones></member></AutoScalingGroups></DescribeAutoScalingGroupsResult>`)
			sb.WriteString(`<ResponseMetadata><RequestId>req-2</RequestId></ResponseMetadata>`)
			sb.WriteString(`</DescribeAutoScalingGroupsResponse>`)
			fmt.Fprint(w, sb.String())
		default:
			t.Errorf("unexpected action %q", r.PostForm.Get("Action"))
		}
	})

	sent := []string{"us-east-1c", "us-east-1a", "us-east-1b"}
	_, err := client.CreateAutoScalingGroup(context.Background(), &api.CreateAutoScalingGroupRequest{
		AutoScalingGroupName:    "web",
		LaunchConfigurationName: "web-lc",
		MinSize:                 1,
		MaxSize:                 2,
		AvailabilityZones:       sent,
	})
	require.NoError(t, err)

	resp, err := client.DescribeAutoScalingGroups(context.Background(), &api.DescribeAutoScalingGroupsRequest{
		AutoScalingGroupNames: []string{"web"},
	})
	require.NoError(t, err)
	require.Len(t, resp.AutoScalingGroups, 1)
	assert.Equal(t, sent, resp.AutoScalingGroups[0].AvailabilityZones)
}

func TestServiceErrorSurfacesAsTypedError(t *testing.T) {
	t.Parallel()

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `<ErrorResponse xmlns="http://autoscaling.amazonaws.com/doc/2010-08-01/">
  <Error>
    <Type>Sender</Type>
    <Code>ValidationError</Code>
    <Message>Group web not found</Message>
  </Error>
  <RequestId>req-err</RequestId>
</ErrorResponse>`)
	})

	_, err := client.DescribeScalingActivities(context.Background(), &api.DescribeScalingActivitiesRequest{
		AutoScalingGroupName: "web",
	})
	require.Error(t, err)

	var serviceErr *api.Error
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "ValidationError", serviceErr.Code)
	assert.Equal(t, "Group web not found", serviceErr.Message)
	assert.Equal(t, "req-err", serviceErr.RequestID)
}

func TestValidationFailsBeforeSending(t *testing.T) {
	t.Parallel()

	requests := 0
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	_, err := client.DeletePolicy(context.Background(), &api.DeletePolicyRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PolicyName")
	assert.Zero(t, requests)
}

func TestStatusOperation(t *testing.T) {
	t.Parallel()

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "SetDesiredCapacity", r.PostForm.Get("Action"))
		assert.Equal(t, "3", r.PostForm.Get("DesiredCapacity"))
		fmt.Fprint(w, statusBody("SetDesiredCapacity", "req-cap"))
	})

	resp, err := client.SetDesiredCapacity(context.Background(), &api.SetDesiredCapacityRequest{
		AutoScalingGroupName: "web",
		DesiredCapacity:      3,
	})
	require.NoError(t, err)
	assert.Equal(t, "req-cap", resp.RequestID)
}

func TestTerminateInstanceReturnsActivity(t *testing.T) {
	t.Parallel()

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "i-0abc", r.PostForm.Get("InstanceId"))
		assert.Equal(t, "true", r.PostForm.Get("ShouldDecrementDesiredCapacity"))
		fmt.Fprint(w, `<TerminateInstanceInAutoScalingGroupResponse xmlns="http://autoscaling.amazonaws.com/doc/2010-08-01/">
  <TerminateInstanceInAutoScalingGroupResult>
    <Activity>
      <ActivityId>act-1</ActivityId>
      <StatusCode>InProgress</StatusCode>
    </Activity>
  </TerminateInstanceInAutoScalingGroupResult>
  <ResponseMetadata><RequestId>req-term</RequestId></ResponseMetadata>
</TerminateInstanceInAutoScalingGroupResponse>`)
	})

	resp, err := client.TerminateInstanceInAutoScalingGroup(context.Background(), &api.TerminateInstanceInAutoScalingGroupRequest{
		InstanceID:                     "i-0abc",
		ShouldDecrementDesiredCapacity: true,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Activity)
	require.NotNil(t, resp.Activity.ActivityID)
	assert.Equal(t, "act-1", *resp.Activity.ActivityID)
}

func TestCreateLaunchConfigurationEncodesUserData(t *testing.T) {
	t.Parallel()

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		// "#!/bin/sh" base64-encoded
		assert.Equal(t, "IyEvYmluL3No", r.PostForm.Get("UserData"))
		assert.Equal(t, "true", r.PostForm.Get("InstanceMonitoring.member.Enabled"))
		fmt.Fprint(w, statusBody("CreateLaunchConfiguration", "req-lc"))
	})

	userData := "#!/bin/sh"
	enabled := true
	req := &api.CreateLaunchConfigurationRequest{
		LaunchConfigurationName:   "web-lc",
		ImageID:                   "ami-12345678",
		InstanceType:              "m1.small",
		UserData:                  &userData,
		InstanceMonitoringEnabled: &enabled,
	}
	_, err := client.CreateLaunchConfiguration(context.Background(), req)
	require.NoError(t, err)

	// The caller's request is left untouched.
	assert.Equal(t, "#!/bin/sh", *req.UserData)
}
