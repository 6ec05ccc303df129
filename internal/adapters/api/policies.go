package api

import (
	"context"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func (c *Client) ListPolicies(ctx context.Context, query domain.PolicyListQuery) (domain.Page[domain.Policy], error) {
	return get[domain.Page[domain.Policy]](ctx, c, "/policies", query.Values())
}

func (c *Client) GetPolicy(ctx context.Context, id string) (domain.Policy, error) {
	return get[domain.Policy](ctx, c, "/policies/"+id, nil)
}

func (c *Client) CreatePolicy(ctx context.Context, req domain.PolicyCreateRequest) (domain.Policy, error) {
	return post[domain.Policy](ctx, c, "/policies", req)
}

func (c *Client) UpdatePolicy(ctx context.Context, id string, req domain.PolicyUpdateRequest) (domain.Policy, error) {
	return put[domain.Policy](ctx, c, "/policies/"+id, req)
}

func (c *Client) DeletePolicy(ctx context.Context, id string) error {
	return del(ctx, c, "/policies/"+id)
}

func (c *Client) EnablePolicy(ctx context.Context, id string) error {
	_, err := post[struct{}](ctx, c, "/policies/"+id+"/enable", nil)
	return err
}

func (c *Client) DisablePolicy(ctx context.Context, id string) error {
	_, err := post[struct{}](ctx, c, "/policies/"+id+"/disable", nil)
	return err
}
