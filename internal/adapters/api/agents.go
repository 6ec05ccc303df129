package api

import (
	"context"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func (c *Client) ListAgents(ctx context.Context, query domain.AgentListQuery) (domain.Page[domain.Agent], error) {
	return get[domain.Page[domain.Agent]](ctx, c, "/agents", query.Values())
}

func (c *Client) GetAgent(ctx context.Context, id string) (domain.Agent, error) {
	return get[domain.Agent](ctx, c, "/agents/"+id, nil)
}

func (c *Client) CreateAgent(ctx context.Context, req domain.AgentCreateRequest) (domain.Agent, error) {
	return post[domain.Agent](ctx, c, "/agents", req)
}

func (c *Client) UpdateAgent(ctx context.Context, id string, req domain.AgentUpdateRequest) (domain.Agent, error) {
	return put[domain.Agent](ctx, c, "/agents/"+id, req)
}

func (c *Client) DeleteAgent(ctx context.Context, id string) error {
	return del(ctx, c, "/agents/"+id)
}

func (c *Client) BindPolicy(ctx context.Context, agentID, policyID string) (domain.AgentPolicyBinding, error) {
	return post[domain.AgentPolicyBinding](ctx, c, "/agents/"+agentID+"/policies/"+policyID, nil)
}

func (c *Client) UnbindPolicy(ctx context.Context, agentID, policyID string) error {
	return del(ctx, c, "/agents/"+agentID+"/policies/"+policyID)
}

func (c *Client) AgentPolicies(ctx context.Context, agentID string) ([]domain.Policy, error) {
	return get[[]domain.Policy](ctx, c, "/agents/"+agentID+"/policies", nil)
}

func (c *Client) AgentPolicyBindings(ctx context.Context, agentID string) ([]domain.AgentPolicyBinding, error) {
	return get[[]domain.AgentPolicyBinding](ctx, c, "/agents/"+agentID+"/policy-bindings", nil)
}
