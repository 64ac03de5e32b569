package sns

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/shared-city/backend/pkg/sms"
)

const smsTypeAttribute = "AWS.SNS.SMS.SMSType"

// Publisher is the part of the SNS client the sender needs.
type Publisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Sender publishes transactional SMS through AWS SNS.
type Sender struct {
	client Publisher
}

func NewSender(ctx context.Context, region string) (*Sender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config failed: %w", err)
	}

	return NewSenderWithClient(sns.NewFromConfig(awsCfg)), nil
}

func NewSenderWithClient(client Publisher) *Sender {
	return &Sender{client: client}
}

func (s *Sender) Send(ctx context.Context, phone string, message string) error {
	if phone == "" {
		return sms.ErrEmptyRecipient
	}

	smsType := "Transactional"
	dataType := "String"

	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: &phone,
		Message:     &message,
		MessageAttributes: map[string]types.MessageAttributeValue{
			smsTypeAttribute: {DataType: &dataType, StringValue: &smsType},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish failed: %w", err)
	}

	return nil
}
