package autoscale

import (
	"log/slog"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
)

type options struct {
	Region      string
	Endpoint    string
	APIVersion  string
	Credentials aws.CredentialsProvider
	HTTPClient  *http.Client
	Logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		APIVersion: APIVersion,
	}
}

type Option func(opt *options)

func WithRegion(region string) Option {
	return func(opt *options) {
		opt.Region = region
	}
}

// WithEndpoint overrides the endpoint URL derived from the region. Useful
// for pointing the client at local emulators.
func WithEndpoint(endpoint string) Option {
	return func(opt *options) {
		opt.Endpoint = endpoint
	}
}

// WithAPIVersion overrides the Version parameter sent with every request.
func WithAPIVersion(version string) Option {
	return func(opt *options) {
		opt.APIVersion = version
	}
}

func WithCredentialsProvider(provider aws.CredentialsProvider) Option {
	return func(opt *options) {
		opt.Credentials = provider
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(opt *options) {
		opt.HTTPClient = client
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(opt *options) {
		opt.Logger = logger
	}
}
