package domain

import (
	"net/url"
	"strconv"
)

type RequestType string

const (
	RequestTypeAPICall RequestType = "API_CALL"
	RequestTypeLLMCall RequestType = "LLM_CALL"
)

type ResponseStatus string

const (
	ResponseSuccess ResponseStatus = "SUCCESS"
	ResponseFailed  ResponseStatus = "FAILED"
	ResponseBlocked ResponseStatus = "BLOCKED"
)

type AgentLog struct {
	ID             string         `json:"id"`
	TenantID       string         `json:"tenantId"`
	AgentID        string         `json:"agentId"`
	AgentName      string         `json:"agentName"`
	RequestType    RequestType    `json:"requestType"`
	Endpoint       string         `json:"endpoint"`
	Method         string         `json:"method"`
	RequestSummary string         `json:"requestSummary"`
	ResponseStatus ResponseStatus `json:"responseStatus"`
	ResponseTimeMs int64          `json:"responseTimeMs"`
	TokenInput     int64          `json:"tokenInput"`
	TokenOutput    int64          `json:"tokenOutput"`
	Model          string         `json:"model"`
	Cost           float64        `json:"cost"`
	PolicyID       string         `json:"policyId"`
	CreatedAt      string         `json:"createdAt"`
}

type AgentLogListQuery struct {
	PageQuery
	AgentID        string
	RequestType    RequestType
	ResponseStatus ResponseStatus
	StartTime      string
	EndTime        string
}

func (q AgentLogListQuery) Values() url.Values {
	values := url.Values{}
	values.Set("current", strconv.Itoa(q.Current))
	values.Set("size", strconv.Itoa(q.Size))
	if q.AgentID != "" {
		values.Set("agentId", q.AgentID)
	}
	if q.RequestType != "" {
		values.Set("requestType", string(q.RequestType))
	}
	if q.ResponseStatus != "" {
		values.Set("responseStatus", string(q.ResponseStatus))
	}
	if q.StartTime != "" {
		values.Set("startTime", q.StartTime)
	}
	if q.EndTime != "" {
		values.Set("endTime", q.EndTime)
	}
	return values
}
