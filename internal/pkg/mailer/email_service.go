package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"log"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOrderConfirmation(toEmail string, data OrderConfirmation) error
}

type OrderLine struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

type OrderConfirmation struct {
	OrderId           int
	CustomerName      string
	Lines             []OrderLine
	Total             float64
	EstimatedDelivery string
	OrderURL          string
}

var confirmationTemplate = template.Must(template.New("confirmation").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
}).Parse(`
<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
	<h2>Thanks for your order, {{.CustomerName}}!</h2>
	<p>Order <strong>#{{.OrderId}}</strong> is confirmed.</p>
	<table style="border-collapse: collapse;">
	{{range .Lines}}<tr><td>{{.Name}}</td><td>x{{.Quantity}}</td><td>{{money .UnitPrice}}</td></tr>
	{{end}}</table>
	<p>Total charged: <strong>{{money .Total}}</strong></p>
	<p>Estimated delivery: {{.EstimatedDelivery}}</p>
	{{if .OrderURL}}<a href="{{.OrderURL}}">View your order</a>{{end}}
</div>
`))

// RenderOrderConfirmation builds the HTML body of the confirmation email.
func RenderOrderConfirmation(data OrderConfirmation) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendOrderConfirmation(toEmail string, data OrderConfirmation) error {
	body, err := RenderOrderConfirmation(data)
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your MarketHub order #%d is confirmed", data.OrderId))
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("[MAILER ERROR] Failed to send confirmation for order %d to %s: %v", data.OrderId, toEmail, err)
		return err
	}

	log.Printf("[MAILER] Confirmation for order %d sent to %s", data.OrderId, toEmail)
	return nil
}

// NoopEmailService is used when SMTP is not configured.
type NoopEmailService struct{}

func (NoopEmailService) SendOrderConfirmation(toEmail string, data OrderConfirmation) error {
	log.Printf("[MAILER] SMTP disabled, skipping confirmation for order %d", data.OrderId)
	return nil
}
