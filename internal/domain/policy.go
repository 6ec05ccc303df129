package domain

import (
	"net/url"
	"strconv"
)

type PolicyType string

const (
	PolicyTypeAccessControl     PolicyType = "ACCESS_CONTROL"
	PolicyTypeContentProtection PolicyType = "CONTENT_PROTECTION"
	PolicyTypeApproval          PolicyType = "APPROVAL"
	PolicyTypeRateLimit         PolicyType = "RATE_LIMIT"
)

type PolicyAction string

const (
	PolicyActionAllow     PolicyAction = "ALLOW"
	PolicyActionDeny      PolicyAction = "DENY"
	PolicyActionApproval  PolicyAction = "APPROVAL"
	PolicyActionMask      PolicyAction = "MASK"
	PolicyActionRateLimit PolicyAction = "RATE_LIMIT"
)

type PolicyScope string

const (
	PolicyScopeGlobal PolicyScope = "GLOBAL"
	PolicyScopeAgent  PolicyScope = "AGENT"
)

type Policy struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Type        PolicyType   `json:"type"`
	Conditions  string       `json:"conditions"`
	Action      PolicyAction `json:"action"`
	Priority    int          `json:"priority"`
	Scope       PolicyScope  `json:"scope"`
	AgentID     string       `json:"agentId,omitempty"`
	Enabled     bool         `json:"enabled"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

type PolicyCreateRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Type        PolicyType   `json:"type"`
	Conditions  string       `json:"conditions,omitempty"`
	Action      PolicyAction `json:"action"`
	Priority    int          `json:"priority,omitempty"`
	Scope       PolicyScope  `json:"scope,omitempty"`
	AgentID     string       `json:"agentId,omitempty"`
}

type PolicyUpdateRequest struct {
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Type        PolicyType   `json:"type,omitempty"`
	Conditions  string       `json:"conditions,omitempty"`
	Action      PolicyAction `json:"action,omitempty"`
	Priority    int          `json:"priority,omitempty"`
	Scope       PolicyScope  `json:"scope,omitempty"`
	AgentID     string       `json:"agentId,omitempty"`
}

type PolicyListQuery struct {
	PageQuery
	Keyword string
	Type    PolicyType
	Scope   PolicyScope
	SortBy  string
}

func (q PolicyListQuery) Values() url.Values {
	values := url.Values{}
	values.Set("current", strconv.Itoa(q.Current))
	values.Set("size", strconv.Itoa(q.Size))
	if q.Keyword != "" {
		values.Set("keyword", q.Keyword)
	}
	if q.Type != "" {
		values.Set("type", string(q.Type))
	}
	if q.Scope != "" {
		values.Set("scope", string(q.Scope))
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
	}
	return values
}
