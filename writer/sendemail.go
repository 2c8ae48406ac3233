package writer

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	gomail "github.com/wneessen/go-mail"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/logger"
)

// Environment variables with the SMTP connection details.
const (
	EnvSMTPHost     = "SMTP_HOST"
	EnvSMTPPort     = "SMTP_PORT"
	EnvSMTPStartTLS = "SMTP_STARTTLS"
	EnvSMTPUser     = "SMTP_USER"
	EnvSMTPPw       = "SMTP_PW"
)

// SendEmail sends the incoming file names as email attachments. The
// connection details come from the environment, optionally loaded from
// a .env file.
type SendEmail struct {
	flow.Base

	DotenvPath string
	From       string
	To         []string
	Subject    string
	Body       string

	client *gomail.Client
}

func NewSendEmail() *SendEmail { return &SendEmail{} }

func (w *SendEmail) Name() string { return "send-email" }

func (w *SendEmail) Description() string {
	return "Sends the incoming files as email attachments. Placeholders in from/to/subject/body get expanded automatically."
}

func (w *SendEmail) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&w.DotenvPath, "dotenv_path", "d", "",
		"the .env file to load the SMTP environment variables from ("+EnvSMTPHost+"|"+EnvSMTPPort+"|"+EnvSMTPStartTLS+"|"+EnvSMTPUser+"|"+EnvSMTPPw+")")
	fs.StringVarP(&w.From, "email_from", "f", "", "the email address to use for FROM")
	fs.StringSliceVarP(&w.To, "email_to", "t", nil, "the email address(es) to send the email to")
	fs.StringVarP(&w.Subject, "subject", "s", "", "the subject for the email")
	fs.StringVarP(&w.Body, "body", "b", "", "the email body to use")
}

func (w *SendEmail) Init(sess *flow.Session) error {
	w.Attach(w.Name(), sess)
	if w.From == "" {
		return errors.Configuration("no FROM address provided")
	}
	if len(w.To) == 0 {
		return errors.Configuration("no TO address provided")
	}
	if w.DotenvPath != "" {
		if err := godotenv.Load(sess.ExpandPlaceholders(w.DotenvPath)); err != nil {
			return errors.Load(w.DotenvPath, err)
		}
	} else {
		_ = godotenv.Load()
	}

	host := os.Getenv(EnvSMTPHost)
	if host == "" {
		return errors.Configuration("SMTP connection details incomplete, required env vars: %s, %s, %s, %s, %s",
			EnvSMTPHost, EnvSMTPPort, EnvSMTPStartTLS, EnvSMTPUser, EnvSMTPPw)
	}
	port := 587
	if p := os.Getenv(EnvSMTPPort); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			return errors.Configuration("invalid %s: %s", EnvSMTPPort, p).WithCause(err)
		}
		port = parsed
	}
	tlsPolicy := gomail.TLSOpportunistic
	if strings.EqualFold(os.Getenv(EnvSMTPStartTLS), "true") {
		tlsPolicy = gomail.TLSMandatory
	}
	client, err := gomail.NewClient(host,
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(os.Getenv(EnvSMTPUser)),
		gomail.WithPassword(os.Getenv(EnvSMTPPw)),
		gomail.WithTLSPolicy(tlsPolicy),
	)
	if err != nil {
		return errors.Configuration("cannot create SMTP client for %s", host).WithCause(err)
	}
	w.client = client
	return nil
}

func (w *SendEmail) Write(data flow.Payload) error {
	msg := gomail.NewMsg()
	if err := msg.From(w.Session.ExpandPlaceholders(w.From)); err != nil {
		return errors.Configuration("invalid FROM address: %s", w.From).WithCause(err)
	}
	for _, to := range w.To {
		if err := msg.AddTo(w.Session.ExpandPlaceholders(to)); err != nil {
			return errors.Configuration("invalid TO address: %s", to).WithCause(err)
		}
	}
	msg.Subject(w.Session.ExpandPlaceholders(w.Subject))
	msg.SetBodyString(gomail.TypeTextPlain, w.Session.ExpandPlaceholders(w.Body))

	var attached []string
	for _, item := range data.Items() {
		path := fmt.Sprint(flow.ItemValue(item))
		msg.AttachFile(path)
		attached = append(attached, path)
	}

	if err := w.client.DialAndSend(msg); err != nil {
		return errors.Newf(errors.ErrCodeRuntime, "failed to send email").WithCause(err)
	}
	w.Log.Info("email sent", logger.Fields(
		"to", strings.Join(w.To, ","), "attachments", len(attached)))
	return nil
}
