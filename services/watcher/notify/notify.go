// Package notify delivers composed alert messages to the outside world.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"time"

	"lottowatch-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"github.com/jordan-wright/email"
)

// Notifier performs one blocking send of an opaque alert message.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

type SmtpConfig struct {
	Host     string   `json:"host"`
	Port     int      `json:"port"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	Subject  string   `json:"subject"`
}

// Config declares the configured notification targets.
type Config struct {
	// Webhook is a url the alert message is POSTed to verbatim.
	Webhook string `json:"webhook"`
	// Smtp, when present, additionally mails the alert message.
	Smtp *SmtpConfig `json:"smtp"`
}

func (c Config) Notifiers() []Notifier {
	var notifiers []Notifier
	if c.Webhook != "" {
		notifiers = append(notifiers, NewWebhook(c.Webhook))
	}
	if c.Smtp != nil {
		notifiers = append(notifiers, NewSmtp(*c.Smtp))
	}
	return notifiers
}

// Webhook POSTs the raw alert message to a fixed url.
type Webhook struct {
	http *resty.Client
	url  string
}

func NewWebhook(url string) Webhook {
	client := resty.New()
	client.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(client, "watcher/notify/webhook")

	return Webhook{
		http: client,
		url:  url,
	}
}

func (w Webhook) Send(ctx context.Context, message string) error {
	res, err := w.http.R().
		SetContext(ctx).
		SetBody([]byte(message)).
		Post(w.url)
	if err != nil {
		return err
	}
	if res.IsError() {
		return fmt.Errorf("webhook returned %s", res.Status())
	}
	return nil
}

// Smtp mails the alert message as plain text.
type Smtp struct {
	config SmtpConfig
}

func NewSmtp(config SmtpConfig) Smtp {
	if config.Subject == "" {
		config.Subject = "Lottery alert"
	}
	return Smtp{config: config}
}

func (s Smtp) Send(ctx context.Context, message string) error {
	e := email.NewEmail()
	e.From = s.config.From
	e.To = s.config.To
	e.Subject = s.config.Subject
	e.Text = []byte(message)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	return e.Send(addr, smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host))
}
