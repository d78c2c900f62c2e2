package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

var goMailDialer *gomail.Dialer

func InitEmailer() error {
	host, err := getSMTPHost()
	if err != nil {
		return err
	}

	port, err := getSMTPPort()
	if err != nil {
		return err
	}

	sender, err := getSender()
	if err != nil {
		return err
	}

	goMailDialer = gomail.NewDialer(host, port, sender, os.Getenv("EMAIL_SENDER_PASSWORD"))

	return nil
}

func EmailerReady() bool {
	return goMailDialer != nil
}

// SendWelcomeEmail greets a freshly registered volunteer. Callers decide
// whether a failure matters; registration itself never depends on it.
func SendWelcomeEmail(name, emailAddress, role string) error {
	if goMailDialer == nil {
		return fmt.Errorf("emailer is not initialized")
	}

	senderEmail, err := getSender()
	if err != nil {
		return err
	}

	goMailMessage := gomail.NewMessage()
	goMailMessage.SetHeader("From", senderEmail)
	goMailMessage.SetHeader("To", emailAddress)
	goMailMessage.SetHeader("Subject", fmt.Sprintf("Welcome aboard, %s!", name))

	body := fmt.Sprintf(`Hi %s,

Thank you for registering as a volunteer. Your role is: %s.

Our coordinators will reach out with schedule details. You can update your
availability or contact data at any time through the registry.

See you soon!`, name, role)

	goMailMessage.SetBody("text/plain", body)

	if err := goMailDialer.DialAndSend(goMailMessage); err != nil {
		return err
	}

	return nil
}

func getSender() (string, error) {
	emailSender := os.Getenv("EMAIL_SENDER")
	if emailSender == "" {
		return "", fmt.Errorf("empty email sender")
	}
	return emailSender, nil
}

func getSMTPHost() (string, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return "", fmt.Errorf("empty smtp host")
	}
	return host, nil
}

func getSMTPPort() (int, error) {
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		return 0, fmt.Errorf("empty smtp port")
	}

	v, err := strconv.Atoi(port)
	if err != nil {
		return 0, fmt.Errorf("invalid smtp port: %v", err)
	}
	return v, nil
}
