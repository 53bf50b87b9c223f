package api

import (
	"net/url"
	"strconv"
)

// Filter serializes entity-specific query parameters. Only defined fields
// appear on the outgoing request; an unset pointer field is omitted.
type Filter interface {
	Values() url.Values
}

// encodeFilter produces the cache-key component for a filter. url.Values
// encoding sorts by key, so equal filter sets always produce equal keys.
func encodeFilter(filter Filter) string {
	if filter == nil {
		return ""
	}
	return filter.Values().Encode()
}

func addInt64(v url.Values, key string, value *int64) {
	if value != nil {
		v.Set(key, strconv.FormatInt(*value, 10))
	}
}

func addString(v url.Values, key string, value *string) {
	if value != nil {
		v.Set(key, *value)
	}
}

func addBool(v url.Values, key string, value *bool) {
	if value != nil {
		v.Set(key, strconv.FormatBool(*value))
	}
}

// Int64 returns a pointer to value, for filter literals.
func Int64(value int64) *int64 { return &value }

// String returns a pointer to value, for filter literals.
func String(value string) *string { return &value }

// Bool returns a pointer to value, for filter literals.
func Bool(value bool) *bool { return &value }

// AgentFilter narrows agent collection reads.
type AgentFilter struct {
	AgentID   *int64
	AgentName *string
	IsActive  *bool
}

func (f AgentFilter) Values() url.Values {
	v := url.Values{}
	addInt64(v, "agent_id", f.AgentID)
	addString(v, "agent_name", f.AgentName)
	addBool(v, "is_active", f.IsActive)
	return v
}

// AiModelFilter narrows AI model collection reads.
type AiModelFilter struct {
	AiModelID   *int64
	AiModelName *string
	IsActive    *bool
}

func (f AiModelFilter) Values() url.Values {
	v := url.Values{}
	addInt64(v, "aimodel_id", f.AiModelID)
	addString(v, "aimodel_name", f.AiModelName)
	addBool(v, "is_active", f.IsActive)
	return v
}

// AiVectorFilter narrows AI vector collection reads.
type AiVectorFilter struct {
	AiVectorID   *int64
	AiVectorName *string
	IsActive     *bool
}

func (f AiVectorFilter) Values() url.Values {
	v := url.Values{}
	addInt64(v, "aivector_id", f.AiVectorID)
	addString(v, "aivector_name", f.AiVectorName)
	addBool(v, "is_active", f.IsActive)
	return v
}

// GuardrailFilter narrows guardrail collection reads.
type GuardrailFilter struct {
	GuardrailID   *int64
	GuardrailName *string
	IsActive      *bool
}

func (f GuardrailFilter) Values() url.Values {
	v := url.Values{}
	addInt64(v, "guardrail_id", f.GuardrailID)
	addString(v, "guardrail_name", f.GuardrailName)
	addBool(v, "is_active", f.IsActive)
	return v
}

// GuardrailRuleFilter narrows guardrail rule collection reads.
type GuardrailRuleFilter struct {
	GuardrailRuleID   *int64
	GuardrailRuleName *string
	IsActive          *bool
}

func (f GuardrailRuleFilter) Values() url.Values {
	v := url.Values{}
	addInt64(v, "guardrail_rule_id", f.GuardrailRuleID)
	addString(v, "guardrail_rule_name", f.GuardrailRuleName)
	addBool(v, "is_active", f.IsActive)
	return v
}

// IntegratorFilter narrows integrator collection reads.
type IntegratorFilter struct {
	IntegratorID   *int64
	IntegratorName *string
	IsActive       *bool
}

func (f IntegratorFilter) Values() url.Values {
	v := url.Values{}
	addInt64(v, "integrator_id", f.IntegratorID)
	addString(v, "integrator_name", f.IntegratorName)
	addBool(v, "is_active", f.IsActive)
	return v
}

// AgentGuardrailMapFilter narrows agent/guardrail association reads.
type AgentGuardrailMapFilter struct {
	AgentID     *int64
	GuardrailID *int64
	IsActive    *bool
}

func (f AgentGuardrailMapFilter) Values() url.Values {
	v := url.Values{}
	addInt64(v, "agent_id", f.AgentID)
	addInt64(v, "guardrail_id", f.GuardrailID)
	addBool(v, "is_active", f.IsActive)
	return v
}

// AgentIntegratorMapFilter narrows agent/integrator association reads.
type AgentIntegratorMapFilter struct {
	AgentID      *int64
	IntegratorID *int64
	IsActive     *bool
}

func (f AgentIntegratorMapFilter) Values() url.Values {
	v := url.Values{}
	addInt64(v, "agent_id", f.AgentID)
	addInt64(v, "integrator_id", f.IntegratorID)
	addBool(v, "is_active", f.IsActive)
	return v
}

// GuardrailRuleMapFilter narrows guardrail/rule association reads.
type GuardrailRuleMapFilter struct {
	GuardrailID     *int64
	GuardrailRuleID *int64
	IsActive        *bool
}

func (f GuardrailRuleMapFilter) Values() url.Values {
	v := url.Values{}
	addInt64(v, "guardrail_id", f.GuardrailID)
	addInt64(v, "guardrail_rule_id", f.GuardrailRuleID)
	addBool(v, "is_active", f.IsActive)
	return v
}
