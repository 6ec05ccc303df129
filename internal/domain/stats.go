package domain

import (
	"net/url"
	"strconv"
)

type StatsOverview struct {
	TotalCost   float64 `json:"totalCost"`
	LLMCost     float64 `json:"llmCost"`
	APICost     float64 `json:"apiCost"`
	TotalTokens int64   `json:"totalTokens"`
	TokenInput  int64   `json:"tokenInput"`
	TokenOutput int64   `json:"tokenOutput"`
	TotalCalls  int64   `json:"totalCalls"`
	AgentCount  int64   `json:"agentCount"`
}

type CostTrend struct {
	Date        string  `json:"date"`
	TotalCost   float64 `json:"totalCost"`
	LLMCost     float64 `json:"llmCost"`
	APICost     float64 `json:"apiCost"`
	APICalls    int64   `json:"apiCalls"`
	TotalTokens int64   `json:"totalTokens"`
}

type AgentCostRank struct {
	AgentID     string  `json:"agentId"`
	AgentName   string  `json:"agentName"`
	TotalCost   float64 `json:"totalCost"`
	LLMCost     float64 `json:"llmCost"`
	APICost     float64 `json:"apiCost"`
	TotalTokens int64   `json:"totalTokens"`
	APICalls    int64   `json:"apiCalls"`
	Rank        int     `json:"rank"`
}

type BudgetWithUsage struct {
	ID              string  `json:"id"`
	Month           string  `json:"month"`
	LimitAmount     float64 `json:"limitAmount"`
	AlertThreshold  float64 `json:"alertThreshold"`
	UsedAmount      float64 `json:"usedAmount"`
	UsagePercentage float64 `json:"usagePercentage"`
	RemainingAmount float64 `json:"remainingAmount"`
	AlertTriggered  bool    `json:"alertTriggered"`
	OverBudget      bool    `json:"overBudget"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

type StatsQuery struct {
	StartDate string
	EndDate   string
}

func (q StatsQuery) Values() url.Values {
	values := url.Values{}
	if q.StartDate != "" {
		values.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		values.Set("endDate", q.EndDate)
	}
	return values
}

type TopAgentsQuery struct {
	Limit     int
	StartDate string
	EndDate   string
}

func (q TopAgentsQuery) Values() url.Values {
	values := url.Values{}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.StartDate != "" {
		values.Set("startDate", q.StartDate)
	}
	if q.EndDate != "" {
		values.Set("endDate", q.EndDate)
	}
	return values
}
