package inquiry

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type recordingListener struct {
	got []Inquiry
}

func (r *recordingListener) ProcessAdd(i Inquiry)  { r.got = append(r.got, i) }
func (r *recordingListener) ProcessRemove(Inquiry) {}
func (r *recordingListener) ProcessUpdate(Inquiry) {}

func TestReceivedInquirySettlesAtDoneWithOneFanOut(t *testing.T) {
	svc := NewService()
	listener := &recordingListener{}
	svc.AddListener(listener)

	conn := NewConnector(svc, zerolog.Nop())
	if err := conn.Subscribe(strings.NewReader("INQ1 91282CAX9 BUY 1000000 99-000 RECEIVED\n")); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	if len(listener.got) != 1 {
		t.Fatalf("expected exactly 1 fan-out event, got %d", len(listener.got))
	}
	final := svc.GetData("INQ1")
	if final.State != Done {
		t.Errorf("final state = %s, want DONE", final.State)
	}
	if listener.got[0].State != Done {
		t.Errorf("fanned-out state = %s, want DONE", listener.got[0].State)
	}
}

func TestRejectInquiryIsTerminalAndRejectsTwice(t *testing.T) {
	svc := NewService()
	svc.Put("INQ2", Inquiry{InquiryID: "INQ2", State: Received})

	if err := svc.RejectInquiry("INQ2"); err != nil {
		t.Fatalf("RejectInquiry: %v", err)
	}
	if got := svc.GetData("INQ2").State; got != Rejected {
		t.Fatalf("state = %s, want REJECTED", got)
	}

	if err := svc.RejectInquiry("INQ2"); err == nil {
		t.Error("expected an error rejecting an already-terminal inquiry")
	}
}
