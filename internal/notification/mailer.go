package notification

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/sthemsandsaves/booking-backend/internal/config"
	"github.com/sthemsandsaves/booking-backend/internal/events"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// Mailer sends booking notification emails over SMTP. Sending is best-effort:
// failures are reported to the caller for logging, never retried here.
type Mailer struct {
	client    *mail.Client
	from      string
	operator  string
	templates *template.Template
	logger    *zap.Logger
}

// NewMailer creates a Mailer from SMTP configuration.
func NewMailer(cfg config.SMTPConfig, logger *zap.Logger) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	templates, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	return &Mailer{
		client:    client,
		from:      cfg.FromAddress,
		operator:  cfg.OperatorEmail,
		templates: templates,
		logger:    logger,
	}, nil
}

// bookingEmailData feeds both notification templates.
type bookingEmailData struct {
	BookingRef      string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	Mode            string
	Guests          int
	CheckIn         string
	CheckOut        string
	Total           string
	SpecialRequests string
}

// NotifyBookingReceived sends the customer confirmation and the operator
// alert for a freshly submitted booking.
func (m *Mailer) NotifyBookingReceived(ctx context.Context, evt events.BookingReceivedEvent) error {
	data := bookingEmailData{
		BookingRef:      evt.BookingNumber,
		CustomerName:    evt.CustomerName,
		CustomerEmail:   evt.CustomerEmail,
		CustomerPhone:   evt.CustomerPhone,
		Mode:            evt.Mode,
		Guests:          evt.Guests,
		CheckIn:         evt.CheckIn.Format("Monday, 2 January 2006"),
		CheckOut:        evt.CheckOut.Format("Monday, 2 January 2006"),
		Total:           FormatZAR(evt.TotalPriceCents),
		SpecialRequests: evt.SpecialRequests,
	}

	customerMsg, err := m.buildMessage(
		evt.CustomerEmail,
		"Booking Confirmation - Sthem's and Save's Transport Service",
		"customer_confirmation.html.tmpl",
		data,
	)
	if err != nil {
		return err
	}

	operatorMsg, err := m.buildMessage(
		m.operator,
		fmt.Sprintf("New Booking Request - %s", evt.CustomerName),
		"operator_alert.html.tmpl",
		data,
	)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, customerMsg, operatorMsg); err != nil {
		return fmt.Errorf("failed to send booking emails: %w", err)
	}

	m.logger.Info("booking notification emails sent",
		zap.String("booking_number", evt.BookingNumber),
		zap.String("customer_email", evt.CustomerEmail),
	)
	return nil
}

func (m *Mailer) buildMessage(to, subject, templateName string, data bookingEmailData) (*mail.Msg, error) {
	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", templateName, err)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, body.String())
	return msg, nil
}

// FormatZAR renders a cent amount as a rand string, e.g. "R4,500.00".
func FormatZAR(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	rand := cents / 100
	remainder := cents % 100

	digits := fmt.Sprintf("%d", rand)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := fmt.Sprintf("R%s.%02d", strings.Join(groups, ","), remainder)
	if negative {
		return "-" + formatted
	}
	return formatted
}
