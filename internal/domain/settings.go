package domain

type EmailSettings struct {
	Enabled           bool   `json:"enabled"`
	SMTPHost          string `json:"smtpHost"`
	SMTPPort          int    `json:"smtpPort"`
	FromEmail         string `json:"fromEmail"`
	FromName          string `json:"fromName"`
	Username          string `json:"username"`
	Password          string `json:"password"`
	SSLEnabled        bool   `json:"sslEnabled"`
	DefaultRecipients string `json:"defaultRecipients"`
}

type WebhookSettings struct {
	DingTalkEnabled      bool   `json:"dingTalkEnabled"`
	DingTalkWebhook      string `json:"dingTalkWebhook"`
	DingTalkSecret       string `json:"dingTalkSecret"`
	WeComEnabled         bool   `json:"weComEnabled"`
	WeComWebhook         string `json:"weComWebhook"`
	CustomWebhookEnabled bool   `json:"customWebhookEnabled"`
	CustomWebhookURL     string `json:"customWebhookUrl"`
	CustomWebhookSecret  string `json:"customWebhookSecret"`
}

type AlertSettings struct {
	CostAlertEnabled                bool    `json:"costAlertEnabled"`
	CostThreshold                   float64 `json:"costThreshold"`
	CostAlertCooldownMinutes        int     `json:"costAlertCooldownMinutes"`
	ErrorRateAlertEnabled           bool    `json:"errorRateAlertEnabled"`
	ErrorRateThreshold              float64 `json:"errorRateThreshold"`
	ErrorRateWindow                 int     `json:"errorRateWindow"`
	ErrorRateAlertCooldownMinutes   int     `json:"errorRateAlertCooldownMinutes"`
	ApprovalReminderEnabled         bool    `json:"approvalReminderEnabled"`
	ApprovalReminderMinutes         int     `json:"approvalReminderMinutes"`
	ApprovalReminderCooldownMinutes int     `json:"approvalReminderCooldownMinutes"`
}
