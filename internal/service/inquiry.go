package service

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"treasurysoa/internal/domain"
	"treasurysoa/internal/fracprice"
	"treasurysoa/internal/soa"
)

// InquiryService runs the RFQ state machine for customer inquiries,
// keyed on inquiry identifier rather than product identifier — each
// inquiry is unique (spec.md §4.7).
//
// The original RECEIVED->QUOTED transition round-tripped through a
// Connector.Publish/Subscribe loopback that simply called back into
// OnMessage. That hop carries no information a direct call wouldn't:
// OnMessage already switches on state, so this service advances
// RECEIVED straight to QUOTED itself and notifies listeners once, with
// identical externally observable behavior.
type InquiryService struct {
	soa.ListenerRegistry[domain.Inquiry]
	inquiries map[string]domain.Inquiry
	idGen     *fracprice.IDGenerator
}

// NewInquiryService constructs an empty InquiryService.
func NewInquiryService(idGen *fracprice.IDGenerator) *InquiryService {
	return &InquiryService{inquiries: make(map[string]domain.Inquiry), idGen: idGen}
}

// GetData returns the current Inquiry for an inquiry identifier.
func (s *InquiryService) GetData(key string) (domain.Inquiry, bool) {
	i, ok := s.inquiries[key]
	return i, ok
}

// OnMessage advances the inquiry's state machine (spec.md §4.7):
//   - RECEIVED: store it, then immediately quote it ourselves (the
//     direct successor of the state machine, collapsed into this one
//     call) and notify listeners once the quote has landed as DONE.
//   - QUOTED: mark DONE and notify listeners.
//   - DONE, REJECTED, CUSTOMER_REJECTED: terminal; no further action.
func (s *InquiryService) OnMessage(data domain.Inquiry) {
	switch data.State {
	case domain.Received:
		s.inquiries[data.InquiryID] = data
		quoted := data.WithState(domain.Quoted)
		s.OnMessage(quoted)
	case domain.Quoted:
		done := data.WithState(domain.Done)
		s.inquiries[done.InquiryID] = done
		s.NotifyAdd(done)
	case domain.Done, domain.Rejected, domain.CustomerRejected:
		s.inquiries[data.InquiryID] = data
	}
}

// SendQuote records a quoted price on an inquiry and notifies listeners
// (spec.md §4.7). It does not itself advance the inquiry's state.
func (s *InquiryService) SendQuote(inquiryID string, price decimal.Decimal) {
	inquiry, ok := s.inquiries[inquiryID]
	if !ok {
		return
	}
	inquiry = inquiry.WithPrice(price)
	s.inquiries[inquiryID] = inquiry
	s.NotifyAdd(inquiry)
}

// RejectInquiry transitions an inquiry to REJECTED.
func (s *InquiryService) RejectInquiry(inquiryID string) {
	inquiry, ok := s.inquiries[inquiryID]
	if !ok {
		return
	}
	s.inquiries[inquiryID] = inquiry.WithState(domain.Rejected)
}

// InquiryConnector parses raw
// "inquiryId,productId,side,quantity,price,state" records into
// Inquiry values and feeds them into an InquiryService (spec.md §4.7, §7).
type InquiryConnector struct {
	service  *InquiryService
	registry domain.Registry

	// OnIngested, if set, is called once for every record that parses
	// successfully.
	OnIngested func()
}

// NewInquiryConnector constructs an InquiryConnector bound to service.
func NewInquiryConnector(service *InquiryService) *InquiryConnector {
	return &InquiryConnector{service: service, registry: domain.NewRegistry()}
}

// Publish feeds an inquiry back into the fabric. Kept distinct from
// Subscribe because it is the re-entry point a future external quoting
// venue would call, while Subscribe is the ingest-file entry point.
func (c *InquiryConnector) Publish(data domain.Inquiry) {
	c.service.OnMessage(data)
}

// Subscribe parses one record and feeds it into the service. Malformed
// records are skipped (spec.md §7); the returned error exists only so a
// caller can log a diagnostic.
func (c *InquiryConnector) Subscribe(line string) error {
	cells := strings.Split(line, ",")
	if len(cells) != 6 {
		return domain.NewParseError("inquiry record", line, fmt.Errorf("expected 6 fields, got %d", len(cells)))
	}

	inquiryID := cells[0]
	productID := cells[1]

	side, err := domain.ParseSide(cells[2])
	if err != nil {
		return err
	}
	quantity, err := strconv.ParseInt(cells[3], 10, 64)
	if err != nil {
		return domain.NewParseError("quantity", cells[3], err)
	}
	price, err := fracprice.Decode(cells[4])
	if err != nil {
		return domain.NewParseError("price", cells[4], err)
	}
	state, err := domain.ParseInquiryState(cells[5])
	if err != nil {
		return err
	}

	bond, _ := c.registry.Lookup(productID)
	inquiry := domain.NewInquiry(inquiryID, bond, side, quantity, price).WithState(state)
	c.service.OnMessage(inquiry)
	if c.OnIngested != nil {
		c.OnIngested()
	}
	return nil
}

// SubscribeStream drains r line by line, calling Subscribe on each
// non-blank line and routing parse errors to onError without halting.
func (c *InquiryConnector) SubscribeStream(r io.Reader, onError func(error)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := c.Subscribe(line); err != nil && onError != nil {
			onError(err)
		}
	}
	return scanner.Err()
}
