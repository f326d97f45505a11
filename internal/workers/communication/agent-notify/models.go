package agentnotify

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"voiceagent-workers/internal/common/logger"
)

type Input struct {
	AgentID    string `json:"agentId"`
	AgentName  string `json:"agentName"`
	OwnerEmail string `json:"ownerEmail,omitempty"`
	OwnerPhone string `json:"ownerPhone,omitempty"`
}

type Output struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	EmailSent bool      `json:"emailSent"`
	SMSSent   bool      `json:"smsSent"`
	SentAt    time.Time `json:"sentAt,omitempty"`
}

// EmailSender is satisfied by the SES client wrapper.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// SMSSender is satisfied by the SNS client wrapper.
type SMSSender interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type ServiceDependencies struct {
	Logger logger.Logger
	Email  EmailSender
	SMS    SMSSender
}
