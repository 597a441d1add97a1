package mailing

import (
	"Privilege-Backend/internal/utils"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	err = dialer.DialAndSend(mailer)
	if err != nil {
		return err
	}

	return nil
}

func SendWelcomeMail(toEmail string, fullName string, bonusPoints int) error {
	subject := "Welcome to Privilege Club"
	body := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your membership is active and %d welcome bonus points have been added to your account.</p>",
		fullName, bonusPoints,
	)
	return SendMail(toEmail, subject, body)
}

func SendRedemptionStatusMail(toEmail string, rewardName string, status string) error {
	subject := fmt.Sprintf("Your redemption is %s", status)
	body := fmt.Sprintf(
		"<p>The status of your redemption for <b>%s</b> is now <b>%s</b>.</p>",
		rewardName, status,
	)
	return SendMail(toEmail, subject, body)
}
