package api

import (
	"context"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func (c *Client) ListApprovals(ctx context.Context, query domain.ApprovalListQuery) (domain.Page[domain.Approval], error) {
	return get[domain.Page[domain.Approval]](ctx, c, "/approvals", query.Values())
}

func (c *Client) GetApproval(ctx context.Context, id string) (domain.Approval, error) {
	return get[domain.Approval](ctx, c, "/approvals/"+id, nil)
}

func (c *Client) ApproveApproval(ctx context.Context, id string, req domain.ApprovalActionRequest) (domain.Approval, error) {
	return post[domain.Approval](ctx, c, "/approvals/"+id+"/approve", req)
}

func (c *Client) RejectApproval(ctx context.Context, id string, req domain.ApprovalActionRequest) (domain.Approval, error) {
	return post[domain.Approval](ctx, c, "/approvals/"+id+"/reject", req)
}
