package email

import (
	"context"
	"fmt"
	"net/smtp"

	"yamdb-backend/pkg/logger"
)

// ConfirmationCodeData carries everything needed to deliver a signup
// confirmation code.
type ConfirmationCodeData struct {
	Email     string
	Username  string
	Code      string
	ExpiresIn string
}

type EmailService interface {
	SendConfirmationCode(ctx context.Context, data ConfirmationCodeData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendConfirmationCode(ctx context.Context, data ConfirmationCodeData) error {
	subject := "Your YaMDb confirmation code"
	body := fmt.Sprintf(`Hello %s,

Your confirmation code:
%s

The code is valid for %s.

If you did not request this code, please ignore this email.`,
		data.Username, data.Code, data.ExpiresIn)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.Email, subject, body))

	err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.Email}, msg)
	if err != nil {
		logger.Info("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        data.Email,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
