package domain

import (
	"net/url"
	"strconv"
)

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
	ApprovalExpired  ApprovalStatus = "EXPIRED"
)

type Approval struct {
	ID          string         `json:"id"`
	PolicyID    string         `json:"policyId"`
	PolicyName  string         `json:"policyName"`
	AgentID     string         `json:"agentId"`
	AgentName   string         `json:"agentName"`
	RequestData string         `json:"requestData"`
	Status      ApprovalStatus `json:"status"`
	ApproverID  string         `json:"approverId"`
	ApprovedAt  string         `json:"approvedAt"`
	Remark      string         `json:"remark"`
	ExpiresAt   string         `json:"expiresAt"`
	CreatedAt   string         `json:"createdAt"`
}

// ApprovalActionRequest optionally attaches a remark to an approve or reject.
type ApprovalActionRequest struct {
	Remark string `json:"remark,omitempty"`
}

type ApprovalListQuery struct {
	PageQuery
	Status  ApprovalStatus
	AgentID string
}

func (q ApprovalListQuery) Values() url.Values {
	values := url.Values{}
	values.Set("current", strconv.Itoa(q.Current))
	values.Set("size", strconv.Itoa(q.Size))
	if q.Status != "" {
		values.Set("status", string(q.Status))
	}
	if q.AgentID != "" {
		values.Set("agentId", q.AgentID)
	}
	return values
}
