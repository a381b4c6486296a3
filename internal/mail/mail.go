package mail

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"github.com/jekabolt/resto-manager/internal/dependency"
	"github.com/jekabolt/resto-manager/internal/document"
	"github.com/jekabolt/resto-manager/internal/entity"
	gerr "github.com/jekabolt/resto-manager/internal/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

const reportTemplate = "report.gohtml"

type Config struct {
	APIKey    string `mapstructure:"sendgrid_api_key"`
	FromEmail string `mapstructure:"from_email"`
	FromName  string `mapstructure:"from_email_name"`
	ReplyTo   string `mapstructure:"reply_to"`
}

type Mailer struct {
	cli       dependency.Sender
	from      *mail.Email
	c         *Config
	templates map[string]*template.Template
}

// New creates a mailer backed by the sendgrid API.
func New(c *Config) (*Mailer, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("incomplete config: sendgrid api key is empty")
	}
	return new(c, sendgrid.NewSendClient(c.APIKey))
}

func new(c *Config, cli dependency.Sender) (*Mailer, error) {
	if c.FromEmail == "" || c.FromName == "" {
		return nil, fmt.Errorf("incomplete config: from email and name are required")
	}

	m := &Mailer{
		cli:       cli,
		from:      mail.NewEmail(c.FromName, c.FromEmail),
		c:         c,
		templates: make(map[string]*template.Template),
	}

	if err := m.parseTemplates(); err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	return m, nil
}

func (m *Mailer) parseTemplates() error {
	templateDir := "templates"

	dirEntries, err := templatesFS.ReadDir(templateDir)
	if err != nil {
		return fmt.Errorf("error reading template directory: %w", err)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		templatePath := filepath.Join(templateDir, entry.Name())
		tmpl, err := template.ParseFS(templatesFS, templatePath)
		if err != nil {
			return fmt.Errorf("error parsing template '%s': %w", entry.Name(), err)
		}
		m.templates[entry.Name()] = tmpl
	}

	return nil
}

type reportSummary struct {
	Title    string
	Period   string
	Date     string
	Revenue  string
	Expenses string
	Profit   string
	Items    int
}

func (m *Mailer) reportBody(r *entity.Report) (string, error) {
	tmpl, ok := m.templates[reportTemplate]
	if !ok {
		return "", fmt.Errorf("template not found: %v", reportTemplate)
	}
	qty := 0
	for _, it := range r.Items {
		qty += it.Quantity
	}
	body := &strings.Builder{}
	err := tmpl.Execute(body, reportSummary{
		Title:    document.Title(r),
		Period:   r.Period,
		Date:     r.Date,
		Revenue:  r.Revenue.StringFixed(2),
		Expenses: r.Expenses.StringFixed(2),
		Profit:   r.Profit().StringFixed(2),
		Items:    qty,
	})
	if err != nil {
		return "", fmt.Errorf("error executing template: %w", err)
	}
	return body.String(), nil
}

func (m *Mailer) buildReportMail(to []string, r *entity.Report, pdf []byte) (*mail.SGMailV3, error) {
	html, err := m.reportBody(r)
	if err != nil {
		return nil, err
	}

	sm := mail.NewV3Mail()
	sm.SetFrom(m.from)
	sm.Subject = document.Title(r)
	if m.c.ReplyTo != "" {
		sm.SetReplyTo(mail.NewEmail(m.c.FromName, m.c.ReplyTo))
	}

	p := mail.NewPersonalization()
	for _, addr := range to {
		p.AddTos(mail.NewEmail("", addr))
	}
	sm.AddPersonalizations(p)
	sm.AddContent(mail.NewContent("text/html", html))

	a := mail.NewAttachment()
	a.SetContent(base64.StdEncoding.EncodeToString(pdf))
	a.SetType("application/pdf")
	a.SetFilename(fmt.Sprintf("report-%s-%s.pdf", r.Period, r.Date))
	a.SetDisposition("attachment")
	a.SetContentID(uuid.NewString())
	sm.AddAttachment(a)

	return sm, nil
}

// SendReport sends a single email addressed to every recipient in to with
// the rendered report attached.
func (m *Mailer) SendReport(ctx context.Context, to []string, r *entity.Report, pdf []byte) error {
	if len(to) == 0 {
		return gerr.InvalidRequest("report has no recipients")
	}
	sm, err := m.buildReportMail(to, r, pdf)
	if err != nil {
		return err
	}

	resp, err := m.cli.SendWithContext(ctx, sm)
	if err != nil {
		return gerr.Dependency(err, "error sending email")
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return gerr.MailApiLimitReached
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return gerr.Dependency(fmt.Errorf("status code: %d, body: %s", resp.StatusCode, resp.Body), "error sending email bad status code")
	}

	slog.Default().InfoContext(ctx, "report sent",
		slog.String("period", r.Period),
		slog.String("date", r.Date),
		slog.Int("recipients", len(to)),
	)
	return nil
}
