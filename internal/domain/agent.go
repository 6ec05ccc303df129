package domain

import (
	"net/url"
	"strconv"
)

type Agent struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	APIKey       string          `json:"apiKey"`
	Description  string          `json:"description,omitempty"`
	LastActiveAt string          `json:"lastActiveAt,omitempty"`
	CreatedAt    string          `json:"createdAt"`
	UpdatedAt    string          `json:"updatedAt"`
	Policies     []PolicySummary `json:"policies,omitempty"`
}

type PolicySummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type AgentCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type AgentUpdateRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type AgentListQuery struct {
	PageQuery
	Keyword string
}

func (q AgentListQuery) Values() url.Values {
	values := url.Values{}
	values.Set("current", strconv.Itoa(q.Current))
	values.Set("size", strconv.Itoa(q.Size))
	if q.Keyword != "" {
		values.Set("keyword", q.Keyword)
	}
	return values
}

// AgentPolicyBinding records a policy attached to an agent.
type AgentPolicyBinding struct {
	ID         string `json:"id"`
	AgentID    string `json:"agentId"`
	PolicyID   string `json:"policyId"`
	AgentName  string `json:"agentName"`
	PolicyName string `json:"policyName"`
	CreatedAt  string `json:"createdAt"`
}
