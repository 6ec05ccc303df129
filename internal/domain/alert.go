package domain

import (
	"net/url"
	"strconv"
)

type AlertType string

const (
	AlertTypeCost      AlertType = "COST"
	AlertTypeErrorRate AlertType = "ERROR_RATE"
	AlertTypeApproval  AlertType = "APPROVAL"
	AlertTypeSystem    AlertType = "SYSTEM"
)

type NotificationChannel string

const (
	ChannelEmail   NotificationChannel = "EMAIL"
	ChannelWebhook NotificationChannel = "WEBHOOK"
)

type AlertStatus string

const (
	AlertSuccess AlertStatus = "SUCCESS"
	AlertFailed  AlertStatus = "FAILED"
)

type AlertRule struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Type          AlertType           `json:"type"`
	Threshold     float64             `json:"threshold"`
	ChannelType   NotificationChannel `json:"channelType"`
	ChannelConfig string              `json:"channelConfig"`
	Enabled       bool                `json:"enabled"`
	CreatedAt     string              `json:"createdAt"`
	UpdatedAt     string              `json:"updatedAt"`
}

type AlertRuleCreateRequest struct {
	Name          string              `json:"name"`
	Type          AlertType           `json:"type"`
	Threshold     float64             `json:"threshold,omitempty"`
	ChannelType   NotificationChannel `json:"channelType"`
	ChannelConfig string              `json:"channelConfig"`
}

type AlertRuleUpdateRequest struct {
	Name          string              `json:"name,omitempty"`
	Type          AlertType           `json:"type,omitempty"`
	Threshold     *float64            `json:"threshold,omitempty"`
	ChannelType   NotificationChannel `json:"channelType,omitempty"`
	ChannelConfig string              `json:"channelConfig,omitempty"`
	Enabled       *bool               `json:"enabled,omitempty"`
}

type AlertHistory struct {
	ID           string              `json:"id"`
	RuleID       string              `json:"ruleId"`
	Type         AlertType           `json:"type"`
	Title        string              `json:"title"`
	Content      string              `json:"content"`
	Recipient    string              `json:"recipient"`
	ChannelType  NotificationChannel `json:"channelType"`
	Status       AlertStatus         `json:"status"`
	ErrorMessage string              `json:"errorMessage"`
	CreatedAt    string              `json:"createdAt"`
}

type AlertRuleListQuery struct {
	PageQuery
	Keyword string
	Type    AlertType
	Enabled *bool
}

func (q AlertRuleListQuery) Values() url.Values {
	values := url.Values{}
	values.Set("current", strconv.Itoa(q.Current))
	values.Set("size", strconv.Itoa(q.Size))
	if q.Keyword != "" {
		values.Set("keyword", q.Keyword)
	}
	if q.Type != "" {
		values.Set("type", string(q.Type))
	}
	if q.Enabled != nil {
		values.Set("enabled", strconv.FormatBool(*q.Enabled))
	}
	return values
}

type AlertHistoryListQuery struct {
	PageQuery
	Type      AlertType
	Status    AlertStatus
	StartTime string
	EndTime   string
}

func (q AlertHistoryListQuery) Values() url.Values {
	values := url.Values{}
	values.Set("current", strconv.Itoa(q.Current))
	values.Set("size", strconv.Itoa(q.Size))
	if q.Type != "" {
		values.Set("type", string(q.Type))
	}
	if q.Status != "" {
		values.Set("status", string(q.Status))
	}
	if q.StartTime != "" {
		values.Set("startTime", q.StartTime)
	}
	if q.EndTime != "" {
		values.Set("endTime", q.EndTime)
	}
	return values
}
