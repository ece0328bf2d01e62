// Package autoscale is a client for the Auto Scaling query API. Typed
// requests are flattened into signed form-encoded POST bodies and XML
// responses are decoded back into typed results.
package autoscale

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/cloudpeer/autoscale/pkg/autoscale/api"
	"github.com/cloudpeer/autoscale/pkg/autoscale/buildinfo"
	"github.com/cloudpeer/autoscale/pkg/autoscale/format"
)

const signingName = "autoscaling"

type Client struct {
	region      string
	endpoint    string
	apiVersion  string
	credentials aws.CredentialsProvider
	httpClient  *http.Client
	signer      *v4.Signer
	validate    *validator.Validate
	logger      *slog.Logger
}

// New creates a client. Credentials and region are loaded from the
// environment and shared AWS config unless provided through options.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	opt := defaultOptions()
	for _, o := range opts {
		o(&opt)
	}
	if opt.Credentials == nil || opt.Region == "" {
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		if opt.Credentials == nil {
			opt.Credentials = cfg.Credentials
		}
		if opt.Region == "" {
			opt.Region = cfg.Region
		}
	}
	if opt.Region == "" {
		opt.Region = DefaultRegion
	}
	if opt.Endpoint == "" {
		opt.Endpoint = RegionEndpoint(opt.Region)
	}
	if opt.HTTPClient == nil {
		opt.HTTPClient = &http.Client{}
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	return &Client{
		region:      opt.Region,
		endpoint:    opt.Endpoint,
		apiVersion:  opt.APIVersion,
		credentials: opt.Credentials,
		httpClient:  opt.HTTPClient,
		signer:      v4.NewSigner(),
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      opt.Logger,
	}, nil
}

func (c *Client) Region() string {
	return c.region
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// do validates req, encodes it as a signed query request and decodes the
// XML response into out.
func (c *Client) do(ctx context.Context, req api.Request, out any) error {
	action := req.Action()
	if err := c.validate.StructCtx(ctx, req); err != nil {
		return fmt.Errorf("validating %s request: %w", action, err)
	}
	values := url.Values{}
	values.Set("Action", action)
	values.Set("Version", c.apiVersion)
	if err := format.EncodeQuery(values, req); err != nil {
		return fmt.Errorf("encoding %s request: %w", action, err)
	}
	body := values.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("building %s request: %w", action, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("User-Agent", buildinfo.UserAgent())
	httpReq.Header.Set("Amz-Sdk-Invocation-Id", uuid.NewString())

	creds, err := c.credentials.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("retrieving credentials: %w", err)
	}
	payloadHash := sha256.Sum256([]byte(body))
	if err := c.signer.SignHTTP(ctx, creds, httpReq, hex.EncodeToString(payloadHash[:]), signingName, c.region, time.Now().UTC()); err != nil {
		return fmt.Errorf("signing %s request: %w", action, err)
	}

	c.logger.Debug("sending request",
		slog.String("action", action),
		slog.String("endpoint", c.endpoint))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sending %s request: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		serviceErr := format.DecodeError(resp.StatusCode, resp.Body)
		c.logger.Debug("request failed",
			slog.String("action", action),
			slog.Int("status", resp.StatusCode),
			slog.String("error", serviceErr.Error()))
		return serviceErr
	}
	if err := format.DecodeResponse(action, resp.Body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", action, err)
	}
	return nil
}
