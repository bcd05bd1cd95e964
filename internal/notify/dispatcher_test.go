package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/aiphotoquote-dotcom/aiphotoquote/internal/entity"
)

type stubSender struct {
	sent  []Email
	errBy map[string]error // keyed by recipient
}

func (s *stubSender) Send(_ context.Context, msg Email) error {
	if err := s.errBy[msg.To]; err != nil {
		return err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func optedInQuote() *entity.Quote {
	return &entity.Quote{
		ID:            uuid.New(),
		CustomerName:  "Dana",
		CustomerEmail: "dana@example.com",
		RenderOptIn:   true,
	}
}

func TestNotifySuccessSendsBoth(t *testing.T) {
	sender := &stubSender{}
	d := NewDispatcher(sender, "renders@example.com", "ops@example.com", nil)

	rep := d.Notify(context.Background(), uuid.New(), optedInQuote(), Outcome{
		Succeeded: true,
		ImageURL:  "https://cdn.example.com/renders/x.png",
	})

	if !rep.OperatorSent || !rep.CustomerSent {
		t.Errorf("report = %+v, want both sent", rep)
	}
	if len(sender.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sender.sent))
	}
	var sawCustomer bool
	for _, msg := range sender.sent {
		if msg.To == "dana@example.com" {
			sawCustomer = true
			if !strings.Contains(msg.Body, "https://cdn.example.com/renders/x.png") {
				t.Error("customer email missing image URL")
			}
		}
	}
	if !sawCustomer {
		t.Error("customer email not sent")
	}
}

func TestNotifyFailureSkipsCustomer(t *testing.T) {
	sender := &stubSender{}
	d := NewDispatcher(sender, "renders@example.com", "ops@example.com", nil)

	rep := d.Notify(context.Background(), uuid.New(), optedInQuote(), Outcome{
		Succeeded:   false,
		FailureCode: "GENERATION_FAILED",
	})

	if rep.CustomerSent {
		t.Error("customers must not hear about failures")
	}
	if !rep.OperatorSent {
		t.Error("operator should still be notified")
	}
	if len(sender.sent) != 1 || sender.sent[0].To != "ops@example.com" {
		t.Errorf("sent = %+v", sender.sent)
	}
	if !strings.Contains(sender.sent[0].Body, "GENERATION_FAILED") {
		t.Error("operator email missing failure code")
	}
}

func TestNotifyRespectsOptOut(t *testing.T) {
	sender := &stubSender{}
	d := NewDispatcher(sender, "renders@example.com", "ops@example.com", nil)

	quote := optedInQuote()
	quote.RenderOptIn = false
	rep := d.Notify(context.Background(), uuid.New(), quote, Outcome{Succeeded: true, ImageURL: "u"})

	if rep.CustomerSent {
		t.Error("opted-out customer was emailed")
	}
}

func TestNotifyDeliveryFailuresAreIndependent(t *testing.T) {
	sender := &stubSender{
		errBy: map[string]error{"ops@example.com": errors.New("smtp down")},
	}
	d := NewDispatcher(sender, "renders@example.com", "ops@example.com", nil)

	rep := d.Notify(context.Background(), uuid.New(), optedInQuote(), Outcome{Succeeded: true, ImageURL: "u"})

	if rep.OperatorSent {
		t.Error("operator marked sent despite failure")
	}
	if !rep.CustomerSent {
		t.Error("operator failure must not block customer email")
	}
	if len(rep.Errors) != 1 || !strings.HasPrefix(rep.Errors[0], "operator:") {
		t.Errorf("Errors = %v", rep.Errors)
	}
}

func TestNotifyNoOperatorConfigured(t *testing.T) {
	sender := &stubSender{}
	d := NewDispatcher(sender, "renders@example.com", "", nil)

	rep := d.Notify(context.Background(), uuid.New(), optedInQuote(), Outcome{Succeeded: true, ImageURL: "u"})
	if rep.OperatorSent {
		t.Error("operator sent with no address configured")
	}
	if !rep.CustomerSent {
		t.Error("customer email should still go out")
	}
}
