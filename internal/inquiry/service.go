package inquiry

import (
	"github.com/shopspring/decimal"

	"github.com/jwang-trading/bondpipeline/internal/pipelineerr"
	"github.com/jwang-trading/bondpipeline/internal/soa"
)

// Service stores the latest Inquiry per inquiryId and fans out to HistInquiry
// on every settled transition. The publish/subscribe loopback that drives
// RECEIVED -> QUOTED -> DONE lives here rather than in Connector, since it is
// the service's state machine, not I/O; Connector only parses rows and
// starts the first OnMessage call.
type Service struct {
	soa.Store[string, Inquiry]
}

// NewService returns an empty InquiryService.
func NewService() *Service {
	return &Service{Store: soa.NewStore[string, Inquiry]()}
}

// OnMessage advances inq's state machine one step and stores the result.
// A RECEIVED inquiry is stored, then a quote is published: publish
// promotes it to QUOTED and re-enters OnMessage, which — seeing QUOTED —
// settles it at DONE and fans out. Recursion is bounded at depth 2 by
// construction: the QUOTED branch below never calls publish again.
func (s *Service) OnMessage(inq Inquiry) {
	switch inq.State {
	case Received:
		s.Put(inq.InquiryID, inq)
		s.publish(inq)
	case Quoted:
		inq.State = Done
		s.Put(inq.InquiryID, inq)
		s.NotifyAdd(inq)
	default:
		s.Put(inq.InquiryID, inq)
		s.NotifyAdd(inq)
	}
}

// publish is the connector-facing half of the loopback: it promotes inq to
// QUOTED at the same price and re-enters OnMessage.
func (s *Service) publish(inq Inquiry) {
	inq.State = Quoted
	s.OnMessage(inq)
}

// SendQuote updates an in-flight inquiry's price without changing its state,
// then fans out. It is a no-op if inquiryId is unknown.
func (s *Service) SendQuote(inquiryID string, price decimal.Decimal) {
	if !s.Has(inquiryID) {
		return
	}
	inq := s.GetData(inquiryID)
	inq.Price = price
	s.Put(inq.InquiryID, inq)
	s.NotifyAdd(inq)
}

// RejectInquiry moves a non-terminal inquiry to REJECTED. It returns an
// InvariantViolation if inquiryId is unknown or already terminal.
func (s *Service) RejectInquiry(inquiryID string) error {
	inq := s.GetData(inquiryID)
	if inq.InquiryID == "" {
		return pipelineerr.Invariantf("reject: unknown inquiryId %q", inquiryID)
	}
	if inq.State.Terminal() {
		return pipelineerr.Invariantf("reject: inquiry %q already terminal (%s)", inquiryID, inq.State)
	}
	inq.State = Rejected
	s.Put(inq.InquiryID, inq)
	s.NotifyAdd(inq)
	return nil
}
