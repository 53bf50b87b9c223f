package api

// GuardrailType classifies a guardrail.
type GuardrailType string

const (
	GuardrailTypeContent     GuardrailType = "content"
	GuardrailTypeSecurity    GuardrailType = "security"
	GuardrailTypeCompliance  GuardrailType = "compliance"
	GuardrailTypeEthics      GuardrailType = "ethics"
	GuardrailTypePerformance GuardrailType = "performance"
)

// AuthType is the credential scheme an integrator connects with.
type AuthType string

const (
	AuthTypeAPIKey    AuthType = "API Key"
	AuthTypeOAuth     AuthType = "OAuth"
	AuthTypeBasicAuth AuthType = "Basic Auth"
	AuthTypeToken     AuthType = "Token"
)

// Agent configures an AI agent and its model/vector bindings. Identifiers
// are assigned by the remote system; leave AgentID zero on create.
type Agent struct {
	AgentID      int64  `json:"agent_id,omitempty"`
	AgentName    string `json:"agent_name"`
	Descriptions string `json:"descriptions"`
	AgentsStatus string `json:"agents_status"`
	AiModelID    int64  `json:"aimodel_id"`
	AiVectorID   int64  `json:"aivector_id"`
	IsActive     bool   `json:"is_active"`
}

// AiModel describes a configured language model.
type AiModel struct {
	AiModelID    int64  `json:"aimodel_id,omitempty"`
	AiModelName  string `json:"aimodel_name"`
	Descriptions string `json:"descriptions"`
	ProviderName string `json:"provider_name"`
	Parameters   string `json:"parameters"`
	ContextToken int64  `json:"context_token"`
	IsActive     bool   `json:"is_active"`
}

// AiVector describes a configured vector store.
type AiVector struct {
	AiVectorID   int64  `json:"aivector_id,omitempty"`
	AiVectorName string `json:"aivector_name"`
	Descriptions string `json:"descriptions"`
	IsActive     bool   `json:"is_active"`
}

// Guardrail is a policy applied to agent traffic.
type Guardrail struct {
	GuardrailID   int64         `json:"guardrail_id,omitempty"`
	GuardrailName string        `json:"guardrail_name"`
	Descriptions  string        `json:"descriptions"`
	GuardrailType GuardrailType `json:"guardrail_type"`
	IsActive      bool          `json:"is_active"`
}

// GuardrailRule is a condition/action pair attachable to guardrails.
type GuardrailRule struct {
	GuardrailRuleID   int64  `json:"guardrail_rule_id,omitempty"`
	GuardrailRuleName string `json:"guardrail_rule_name"`
	Descriptions      string `json:"descriptions"`
	Conditions        string `json:"conditions"`
	Actions           string `json:"actions"`
	IsActive          bool   `json:"is_active"`
}

// Integrator is an external service connection available to agents.
type Integrator struct {
	IntegratorID   int64    `json:"integrator_id,omitempty"`
	IntegratorName string   `json:"integrator_name"`
	Descriptions   string   `json:"descriptions"`
	IntegratorType string   `json:"integrator_type"`
	ProviderName   string   `json:"provider_name"`
	AuthType       AuthType `json:"auth_type"`
	IsConnected    bool     `json:"is_connected"`
	IconName       string   `json:"icon_name"`
	IsActive       bool     `json:"is_active"`
}

// MarketPlace is one entry of the read-only marketplace catalog.
type MarketPlace struct {
	MarketPlaceID   int64  `json:"marketplace_id"`
	MarketPlaceName string `json:"marketplace_name"`
	Descriptions    string `json:"descriptions"`
	IsActive        bool   `json:"is_active"`
}

// AgentGuardrailMap is one agent/guardrail association row.
type AgentGuardrailMap struct {
	MapID       int64 `json:"map_id,omitempty"`
	AgentID     int64 `json:"agent_id"`
	GuardrailID int64 `json:"guardrail_id"`
	IsActive    bool  `json:"is_active"`
}

// AgentGuardrailLink attaches a batch of guardrails to one agent.
type AgentGuardrailLink struct {
	AgentID      int64   `json:"agent_id"`
	GuardrailIDs []int64 `json:"guardrail_ids"`
	IsActive     bool    `json:"is_active"`
}

// AgentIntegratorMap is one agent/integrator association row.
type AgentIntegratorMap struct {
	MapID        int64 `json:"map_id,omitempty"`
	AgentID      int64 `json:"agent_id"`
	IntegratorID int64 `json:"integrator_id"`
	IsActive     bool  `json:"is_active"`
}

// AgentIntegratorLink attaches a batch of integrators to one agent.
type AgentIntegratorLink struct {
	AgentID       int64   `json:"agent_id"`
	IntegratorIDs []int64 `json:"integrator_ids"`
	IsActive      bool    `json:"is_active"`
}

// GuardrailRuleMap is one guardrail/rule association row.
type GuardrailRuleMap struct {
	MapID           int64 `json:"map_id,omitempty"`
	GuardrailID     int64 `json:"guardrail_id"`
	GuardrailRuleID int64 `json:"guardrail_rule_id"`
	IsActive        bool  `json:"is_active"`
}

// GuardrailRuleLink attaches a batch of rules to one guardrail.
type GuardrailRuleLink struct {
	GuardrailID      int64   `json:"guardrail_id"`
	GuardrailRuleIDs []int64 `json:"guardrail_rule_ids"`
	IsActive         bool    `json:"is_active"`
}
