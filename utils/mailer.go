package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/Suchith04/Calorie-Catcher/models"
)

var sesClient *ses.Client

func InitMailer() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		return fmt.Errorf("mailer not initialized")
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_SENDER")),
	}
	_, err := sesClient.SendEmail(context.TODO(), input)
	return err
}

// SESNotifier mails the user when a penalty is created.
type SESNotifier struct{}

func (SESNotifier) NotifyPenalty(email string, penalty *models.Penalty) error {
	var body string
	switch penalty.PenaltyType {
	case models.PenaltyCharity:
		body = fmt.Sprintf(
			"You went %.0f calories over target today. Charity penalty: donate $%.0f and mark it completed in the app.",
			penalty.CaloriesOver, penalty.Amount,
		)
	case models.PenaltySocialMediaLock:
		days := 0
		if penalty.EndDate != nil {
			days = int(time.Until(*penalty.EndDate).Hours()/24) + 1
		}
		body = fmt.Sprintf(
			"You went %.0f calories over target today. Social media lock penalty: %d day(s).",
			penalty.CaloriesOver, days,
		)
	default:
		body = fmt.Sprintf("You went %.0f calories over target today.", penalty.CaloriesOver)
	}
	return sendEmail(email, "Calorie Catcher: new penalty", body)
}
