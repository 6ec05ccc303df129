package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Calvin-Zhu01/agent-guard/internal/domain"
)

func (c *Client) ListAlertRules(ctx context.Context, query domain.AlertRuleListQuery) (domain.Page[domain.AlertRule], error) {
	return get[domain.Page[domain.AlertRule]](ctx, c, "/alerts/rules", query.Values())
}

func (c *Client) GetAlertRule(ctx context.Context, id string) (domain.AlertRule, error) {
	return get[domain.AlertRule](ctx, c, "/alerts/rules/"+id, nil)
}

func (c *Client) CreateAlertRule(ctx context.Context, req domain.AlertRuleCreateRequest) (domain.AlertRule, error) {
	return post[domain.AlertRule](ctx, c, "/alerts/rules", req)
}

func (c *Client) UpdateAlertRule(ctx context.Context, id string, req domain.AlertRuleUpdateRequest) (domain.AlertRule, error) {
	return put[domain.AlertRule](ctx, c, "/alerts/rules/"+id, req)
}

func (c *Client) DeleteAlertRule(ctx context.Context, id string) error {
	return del(ctx, c, "/alerts/rules/"+id)
}

func (c *Client) EnableAlertRule(ctx context.Context, id string) error {
	_, err := post[struct{}](ctx, c, "/alerts/rules/"+id+"/enable", nil)
	return err
}

func (c *Client) DisableAlertRule(ctx context.Context, id string) error {
	_, err := post[struct{}](ctx, c, "/alerts/rules/"+id+"/disable", nil)
	return err
}

func (c *Client) EnabledAlertRules(ctx context.Context) ([]domain.AlertRule, error) {
	return get[[]domain.AlertRule](ctx, c, "/alerts/rules/enabled", nil)
}

func (c *Client) ListAlertHistory(ctx context.Context, query domain.AlertHistoryListQuery) (domain.Page[domain.AlertHistory], error) {
	return get[domain.Page[domain.AlertHistory]](ctx, c, "/alerts/history", query.Values())
}

func (c *Client) GetAlertHistory(ctx context.Context, id string) (domain.AlertHistory, error) {
	return get[domain.AlertHistory](ctx, c, "/alerts/history/"+id, nil)
}

func (c *Client) RecentAlertHistory(ctx context.Context, limit int) ([]domain.AlertHistory, error) {
	query := url.Values{"limit": []string{strconv.Itoa(limit)}}
	return get[[]domain.AlertHistory](ctx, c, "/alerts/history/recent", query)
}

func (c *Client) AlertHistoryByRule(ctx context.Context, ruleID string, page domain.PageQuery) (domain.Page[domain.AlertHistory], error) {
	query := url.Values{
		"current": []string{strconv.Itoa(page.Current)},
		"size":    []string{strconv.Itoa(page.Size)},
	}
	return get[domain.Page[domain.AlertHistory]](ctx, c, "/alerts/history/rule/"+ruleID, query)
}
