package agentnotify

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"voiceagent-workers/internal/common/errors"
	"voiceagent-workers/internal/common/logger"
	"voiceagent-workers/internal/common/validation"
)

type Service struct {
	logger logger.Logger
	email  EmailSender
	sms    SMSSender
	config *Config
}

func NewService(deps ServiceDependencies, cfg *Config) *Service {
	return &Service{
		logger: deps.Logger,
		email:  deps.Email,
		sms:    deps.SMS,
		config: cfg,
	}
}

// Execute notifies the owner that their agent draft is ready. Email is the
// primary channel; SMS is sent in addition when a phone number is present and
// the channel is enabled. A failure on any attempted channel fails the job so
// the notification retries.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	output := &Output{}

	if s.config.EmailEnabled && input.OwnerEmail != "" {
		if !validation.ValidateEmail(input.OwnerEmail) {
			return nil, errors.NewValidationFailedError(
				fmt.Sprintf("invalid ownerEmail: %s", input.OwnerEmail))
		}
		if err := s.sendEmail(ctx, input); err != nil {
			return nil, errors.NewNotificationSendFailedError("email", err)
		}
		output.EmailSent = true
	}

	if s.config.SMSEnabled && input.OwnerPhone != "" {
		if !validation.ValidatePhone(input.OwnerPhone) {
			return nil, errors.NewValidationFailedError(
				fmt.Sprintf("invalid ownerPhone: %s", input.OwnerPhone))
		}
		if err := s.sendSMS(ctx, input); err != nil {
			return nil, errors.NewNotificationSendFailedError("sms", err)
		}
		output.SMSSent = true
	}

	output.Success = true
	output.SentAt = time.Now().UTC()
	if !output.EmailSent && !output.SMSSent {
		output.Message = "No notification channels applicable"
	} else {
		output.Message = "Notification delivered"
	}

	s.logger.Info("Agent notification processed", map[string]interface{}{
		"agentId":   input.AgentID,
		"emailSent": output.EmailSent,
		"smsSent":   output.SMSSent,
	})

	return output, nil
}

func (s *Service) sendEmail(ctx context.Context, input *Input) error {
	if s.email == nil {
		return fmt.Errorf("email sender not configured")
	}

	subject := fmt.Sprintf("Your agent %q is ready", input.AgentName)
	body := fmt.Sprintf(
		"Your voice agent %q has been created and is ready for review.\n\nAgent ID: %s\n",
		input.AgentName, input.AgentID)

	_, err := s.email.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.config.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{input.OwnerEmail},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
	})
	return err
}

func (s *Service) sendSMS(ctx context.Context, input *Input) error {
	if s.sms == nil {
		return fmt.Errorf("sms sender not configured")
	}

	message := fmt.Sprintf("Your voice agent %q is ready for review.", input.AgentName)

	publishInput := &sns.PublishInput{
		PhoneNumber: aws.String(input.OwnerPhone),
		Message:     aws.String(message),
	}

	_, err := s.sms.Publish(ctx, publishInput)
	return err
}
