// FILE: hydrogen-config/notify.go
package config

import "strings"

const notifyKey = "Notify"

// NotifyConfig configures outgoing notifications.
type NotifyConfig struct {
	Enabled  bool
	Notifier string
	SMTP     SMTPConfig
}

// SMTPConfig is the mail server used for notifications.
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	UseTLS      bool
	Timeout     int
	MaxRetries  int
	FromAddress string
}

func (c *NotifyConfig) reset() {
	*c = NotifyConfig{
		Enabled:  false,
		Notifier: "SMTP",
		SMTP: SMTPConfig{
			Host:        "localhost",
			Port:        587,
			UseTLS:      true,
			Timeout:     30,
			MaxRetries:  3,
			FromAddress: "hydrogen@localhost",
		},
	}
}

func (c *NotifyConfig) fields() []Field {
	k := notifyKey + "."
	smtp := k + "SMTP."
	return []Field{
		SectionField(notifyKey),
		BoolField(k+"Enabled", &c.Enabled),
		StringField(k+"Notifier", &c.Notifier),
		SectionField(k + "SMTP"),
		StringField(smtp+"Host", &c.SMTP.Host),
		IntField(smtp+"Port", &c.SMTP.Port),
		StringField(smtp+"Username", &c.SMTP.Username),
		SensitiveField(smtp+"Password", &c.SMTP.Password),
		BoolField(smtp+"UseTLS", &c.SMTP.UseTLS),
		IntField(smtp+"Timeout", &c.SMTP.Timeout),
		IntField(smtp+"MaxRetries", &c.SMTP.MaxRetries),
		StringField(smtp+"FromAddress", &c.SMTP.FromAddress),
	}
}

func (c *NotifyConfig) load(p *Processor) error {
	c.reset()
	return p.Process("Notify", c.fields()...)
}

func (c *NotifyConfig) validate() error {
	if !c.Enabled || !strings.EqualFold(c.Notifier, "SMTP") {
		return nil
	}
	const s = "Notify"
	return firstError(
		checkNonEmpty(s, "SMTP.Host", c.SMTP.Host),
		checkPort(s, "SMTP.Port", c.SMTP.Port),
		checkMin(s, "SMTP.Timeout", c.SMTP.Timeout, 1),
		checkMin(s, "SMTP.MaxRetries", c.SMTP.MaxRetries, 0),
	)
}
