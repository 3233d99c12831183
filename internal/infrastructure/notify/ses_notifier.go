package notify

import (
	"context"
	"fmt"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type sesAPI interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESNotifier e-mails the workshop. Reply-To is the visitor so answering goes straight to them.
type SESNotifier struct {
	client    sesAPI
	sender    string
	recipient string
}

var _ interfaces.IOwnerNotifier = (*SESNotifier)(nil)

func NewSESNotifier(ctx context.Context, region, sender, recipient string) (*SESNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESNotifier{client: ses.NewFromConfig(cfg), sender: sender, recipient: recipient}, nil
}

func (n *SESNotifier) NotifyContact(ctx context.Context, lead entities.ContactRequest) error {
	in := &ses.SendEmailInput{
		Source: aws.String(n.sender),
		Destination: &types.Destination{
			ToAddresses: []string{n.recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(leadSubject(lead)), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(leadText(lead)), Charset: aws.String("UTF-8")},
			},
		},
	}
	if lead.Email != "" {
		in.ReplyToAddresses = []string{lead.Email}
	}
	if _, err := n.client.SendEmail(ctx, in); err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
