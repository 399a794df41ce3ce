package faretable

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"go.opentelemetry.io/otel/codes"
)

type SmtpConfig struct {
	Server       string `json:"server"`
	Port         int    `json:"port"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

// SendEmail mails the rendered document as an HTML body.
func SendEmail(ctx context.Context, config SmtpConfig, to string, document string) error {
	_, span := tracer.Start(ctx, "SendEmail")
	defer span.End()

	if config.Server == "" {
		err := fmt.Errorf("no smtp server configured, set `smtp` in config.json5")
		span.RecordError(err)
		span.SetStatus(codes.Error, "missing smtp config")
		return err
	}

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Sapsan Table <%s>", config.EmailAddress)
	mail.To = []string{to}
	mail.Subject = "Тарифы «Сапсан» Москва → Санкт-Петербург"
	mail.HTML = []byte(document)

	err := mail.Send(
		fmt.Sprintf("%s:%d", config.Server, config.Port),
		smtp.PlainAuth("", config.EmailAddress, config.Password, config.Server),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to send email")
		return err
	}
	return nil
}
