package service

import (
	"context"

	"github.com/Ebesoh-Adrian/ADForexPre/client"
	"github.com/Ebesoh-Adrian/ADForexPre/model"
)

type EmailService interface {
	SendEmail(ctx context.Context, request model.BrevoEmailRequest) error
}

type EmailServiceImpl struct {
	brevoClient *client.BrevoClient
	apiKey      string
}

func NewEmailService(bc *client.BrevoClient, apiKey string) EmailService {
	return &EmailServiceImpl{
		brevoClient: bc,
		apiKey:      apiKey,
	}
}

func (s *EmailServiceImpl) SendEmail(ctx context.Context, request model.BrevoEmailRequest) error {
	_, err := s.brevoClient.SendTransactionalEmail(ctx, s.apiKey, request)
	return err
}
