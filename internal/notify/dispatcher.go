package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
)

// Outcome is what the dispatcher tells people about; it never feeds back
// into the job result.
type Outcome struct {
	Succeeded   bool
	ImageURL    string
	FailureCode string
}

// Report records what was attempted and what broke. Delivery failures are
// metadata only.
type Report struct {
	OperatorSent bool     `json:"operator_sent"`
	CustomerSent bool     `json:"customer_sent"`
	Errors       []string `json:"errors,omitempty"`
}

// Dispatcher sends the operator- and customer-facing render emails. The two
// deliveries are attempted independently so one failing never blocks the
// other, and no failure here ever escalates to the job.
type Dispatcher struct {
	sender          EmailSender
	fromAddress     string
	operatorAddress string
	logger          *slog.Logger
}

func NewDispatcher(sender EmailSender, fromAddress, operatorAddress string, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		sender:          sender,
		fromAddress:     fromAddress,
		operatorAddress: operatorAddress,
		logger:          logger,
	}
}

// Notify never returns an error by contract.
func (d *Dispatcher) Notify(ctx context.Context, tenantID uuid.UUID, quote *entity.Quote, out Outcome) Report {
	var report Report

	if d.operatorAddress != "" {
		if err := d.sendOperator(ctx, tenantID, quote, out); err != nil {
			d.logger.Warn("notify.operator_failed",
				"tenant_id", tenantID, "quote_id", quote.ID, "err", err)
			report.Errors = append(report.Errors, "operator: "+err.Error())
		} else {
			report.OperatorSent = true
		}
	}

	// customers only hear about successes they opted into
	if out.Succeeded && quote.RenderOptIn && quote.CustomerEmail != "" {
		if err := d.sendCustomer(ctx, quote, out); err != nil {
			d.logger.Warn("notify.customer_failed",
				"tenant_id", tenantID, "quote_id", quote.ID, "err", err)
			report.Errors = append(report.Errors, "customer: "+err.Error())
		} else {
			report.CustomerSent = true
		}
	}

	return report
}

func (d *Dispatcher) sendOperator(ctx context.Context, tenantID uuid.UUID, quote *entity.Quote, out Outcome) error {
	subject := fmt.Sprintf("Render finished for quote %s", quote.ID)
	body := fmt.Sprintf("Quote %s rendered.\nImage: %s\n", quote.ID, out.ImageURL)
	if !out.Succeeded {
		subject = fmt.Sprintf("Render failed for quote %s", quote.ID)
		body = fmt.Sprintf("Quote %s failed to render.\nReason: %s\n", quote.ID, out.FailureCode)
	}
	return d.sender.Send(ctx, Email{
		To:      d.operatorAddress,
		From:    d.fromAddress,
		Subject: subject,
		Body:    body + fmt.Sprintf("Tenant: %s\n", tenantID),
	})
}

func (d *Dispatcher) sendCustomer(ctx context.Context, quote *entity.Quote, out Outcome) error {
	name := quote.CustomerName
	if name == "" {
		name = "there"
	}
	return d.sender.Send(ctx, Email{
		To:      quote.CustomerEmail,
		From:    d.fromAddress,
		Subject: "Your project visualization is ready",
		Body: fmt.Sprintf("Hi %s,\n\nWe've prepared a visualization of your finished project:\n%s\n",
			name, out.ImageURL),
	})
}
