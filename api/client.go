package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/joeshaw/envdecode"
	"golang.org/x/sync/singleflight"
)

// TokenSource supplies the bearer credential attached to authenticated
// calls. Implementations must read the token fresh on every call so a token
// rotated by a parallel login takes effect without explicit coordination.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Config holds AgentOne API client configuration.
type Config struct {
	// BaseURL is the remote API base, e.g. "https://api.agentone.dev". ENV: AGENTONE_API_URL
	BaseURL string `env:"AGENTONE_API_URL,required"`

	// CacheTTL bounds how long cached collection reads stay fresh. ENV: AGENTONE_CACHE_TTL
	CacheTTL time.Duration `env:"AGENTONE_CACHE_TTL,default=5m"`

	// HTTPClient overrides the transport. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Tokens supplies the bearer credential for authenticated calls.
	Tokens TokenSource

	// Logger receives per-request debug logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// ConfigFromEnv builds a Config using envdecode to populate the tagged fields.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode api config: %w", err)
	}
	return cfg, nil
}

// Client is the AgentOne REST API client. Every configuration entity is
// exposed through a uniform cached resource; mutations invalidate all
// cached reads for their entity tag.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *slog.Logger
	cache   *queryCache
	flight  singleflight.Group

	Agents         *Resource[Agent]
	AiModels       *Resource[AiModel]
	AiVectors      *Resource[AiVector]
	Guardrails     *Resource[Guardrail]
	GuardrailRules *Resource[GuardrailRule]
	Integrators    *Resource[Integrator]

	AgentGuardrails   *MapResource[AgentGuardrailMap, AgentGuardrailLink]
	AgentIntegrators  *MapResource[AgentIntegratorMap, AgentIntegratorLink]
	GuardrailRuleMaps *MapResource[GuardrailRuleMap, GuardrailRuleLink]

	marketPlaces *Resource[MarketPlace]
}

// New creates a new API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api base url is required")
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL: cfg.BaseURL,
		http:    httpClient,
		tokens:  cfg.Tokens,
		log:     logger,
		cache:   newQueryCache(cfg.CacheTTL),
	}

	c.Agents = &Resource[Agent]{client: c, tag: "agents", nameParam: "agent_name"}
	c.AiModels = &Resource[AiModel]{client: c, tag: "aimodels", nameParam: "aimodel_name"}
	c.AiVectors = &Resource[AiVector]{client: c, tag: "aivectors", nameParam: "aivector_name"}
	c.Guardrails = &Resource[Guardrail]{client: c, tag: "guardrails", nameParam: "guardrail_name"}
	c.GuardrailRules = &Resource[GuardrailRule]{client: c, tag: "guardrail-rules", nameParam: "guardrail_rule_name"}
	c.Integrators = &Resource[Integrator]{client: c, tag: "integrators", nameParam: "integrator_name"}

	c.AgentGuardrails = &MapResource[AgentGuardrailMap, AgentGuardrailLink]{
		res: &Resource[AgentGuardrailMap]{client: c, tag: "agent-guardrail-map"},
	}
	c.AgentIntegrators = &MapResource[AgentIntegratorMap, AgentIntegratorLink]{
		res: &Resource[AgentIntegratorMap]{client: c, tag: "agent-integrator-map"},
	}
	c.GuardrailRuleMaps = &MapResource[GuardrailRuleMap, GuardrailRuleLink]{
		res: &Resource[GuardrailRuleMap]{client: c, tag: "guardrail-rule-map"},
	}

	c.marketPlaces = &Resource[MarketPlace]{client: c, tag: "market-places"}

	return c, nil
}

// MarketPlaces lists the marketplace catalog. The endpoint is read-only and
// takes no filters; results are cached under their own tag.
func (c *Client) MarketPlaces(ctx context.Context) ([]MarketPlace, error) {
	return c.marketPlaces.Get(ctx, nil)
}

// payload is implemented by response bodies that carry the remote success
// flag and message.
type payload interface {
	ok() bool
	message() string
}

// do performs one JSON request against the remote API and decodes the
// response into out. When withAuth is set, the bearer credential is sourced
// from the token source at call time. Transport failures, non-2xx statuses,
// malformed bodies, and payloads reporting success=false all produce errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, withAuth bool) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if withAuth && c.tokens != nil {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return fmt.Errorf("%s %s: read access token: %w", method, path, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("api request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var decodeErr error
	if out != nil {
		decodeErr = json.NewDecoder(resp.Body).Decode(out)
	}

	c.log.Debug("api request",
		"method", method, "path", path, "status", resp.StatusCode,
		"duration", time.Since(start), "request_id", requestID)

	succeeded := resp.StatusCode >= 200 && resp.StatusCode < 300
	if decodeErr != nil {
		if !succeeded {
			return &Error{Status: resp.StatusCode}
		}
		return fmt.Errorf("%s %s: decode response: %w", method, path, decodeErr)
	}
	if !succeeded {
		apiErr := &Error{Status: resp.StatusCode}
		if p, ok := out.(payload); ok {
			apiErr.Msg = p.message()
		}
		return apiErr
	}
	if p, ok := out.(payload); ok && !p.ok() {
		return &Error{Status: resp.StatusCode, Msg: p.message()}
	}
	return nil
}
