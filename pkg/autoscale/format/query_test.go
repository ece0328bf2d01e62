package format

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listener struct {
	Protocol     string `url:"Protocol"`
	InstancePort int    `url:"InstancePort"`
}

type monitoring struct {
	Enabled *bool `url:"Enabled"`
}

type common struct {
	Token *string `url:"NextToken"`
}

type encodable struct {
	common
	Name       string      `url:"Name"`
	Zones      []string    `url:"AvailabilityZones"`
	Listeners  []listener  `url:"Listeners"`
	Count      *int        `url:"Count"`
	Monitoring *monitoring `url:"Monitoring"`
	At         *time.Time  `url:"At"`
	ignored    string
}

func TestEncodeQuery(t *testing.T) {
	t.Parallel()

	enabled := true
	count := 0
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    any
		expected url.Values
	}{
		{
			name:  "scalar list produces one indexed entry per item",
			input: &encodable{Zones: []string{"us-east-1a", "us-east-1b", "us-east-1c"}},
			expected: url.Values{
				"AvailabilityZones.member.1": {"us-east-1a"},
				"AvailabilityZones.member.2": {"us-east-1b"},
				"AvailabilityZones.member.3": {"us-east-1c"},
			},
		},
		{
			name: "struct list suffixes each field under the indexed member",
			input: &encodable{Listeners: []listener{
				{Protocol: "HTTP", InstancePort: 80},
				{Protocol: "TCP", InstancePort: 443},
			}},
			expected: url.Values{
				"Listeners.member.1.Protocol":     {"HTTP"},
				"Listeners.member.1.InstancePort": {"80"},
				"Listeners.member.2.Protocol":     {"TCP"},
				"Listeners.member.2.InstancePort": {"443"},
			},
		},
		{
			name:     "absent optionals are omitted entirely",
			input:    &encodable{},
			expected: url.Values{},
		},
		{
			name:  "explicit zero values are not absent",
			input: &encodable{Count: &count},
			expected: url.Values{
				"Count": {"0"},
			},
		},
		{
			name:  "nested struct joins names with a dot",
			input: &encodable{Monitoring: &monitoring{Enabled: &enabled}},
			expected: url.Values{
				"Monitoring.Enabled": {"true"},
			},
		},
		{
			name:  "embedded struct contributes fields at the top level",
			input: &encodable{common: common{Token: strPtr("page-2")}, Name: "web"},
			expected: url.Values{
				"NextToken": {"page-2"},
				"Name":      {"web"},
			},
		},
		{
			name:  "timestamps are ISO8601",
			input: &encodable{At: &at},
			expected: url.Values{
				"At": {"2026-03-01T12:30:00Z"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			values := url.Values{}
			err := EncodeQuery(values, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, values)
		})
	}
}

func TestEncodeQueryRejectsNonStruct(t *testing.T) {
	t.Parallel()
	values := url.Values{}
	assert.Error(t, EncodeQuery(values, "not a struct"))
}

func TestEncodeQueryNilRequest(t *testing.T) {
	t.Parallel()
	values := url.Values{}
	var req *encodable
	require.NoError(t, EncodeQuery(values, req))
	assert.Empty(t, values)
}

func strPtr(s string) *string {
	return &s
}
