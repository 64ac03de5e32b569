package sns

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/shared-city/backend/pkg/sms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	args := m.Called(ctx, in)
	return &sns.PublishOutput{}, args.Error(0)
}

func TestSender_Send(t *testing.T) {
	p := &mockPublisher{}
	p.On("Publish", mock.Anything, mock.MatchedBy(func(in *sns.PublishInput) bool {
		return *in.PhoneNumber == "+8613800001234" && *in.Message == "code 123456"
	})).Return(nil)

	err := NewSenderWithClient(p).Send(context.Background(), "+8613800001234", "code 123456")

	require.NoError(t, err)
	p.AssertExpectations(t)
}

func TestSender_SendWrapsPublishError(t *testing.T) {
	p := &mockPublisher{}
	p.On("Publish", mock.Anything, mock.Anything).Return(errors.New("throttled"))

	err := NewSenderWithClient(p).Send(context.Background(), "+8613800001234", "code")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}

func TestSender_SendEmptyPhone(t *testing.T) {
	err := NewSenderWithClient(&mockPublisher{}).Send(context.Background(), "", "code")

	assert.ErrorIs(t, err, sms.ErrEmptyRecipient)
}
