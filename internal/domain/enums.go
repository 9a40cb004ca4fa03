package domain

// PricingSide is the side of a market-data Order: BID or OFFER.
type PricingSide int

const (
	Bid PricingSide = iota
	Offer
)

func (s PricingSide) String() string {
	switch s {
	case Bid:
		return "BID"
	case Offer:
		return "OFFER"
	default:
		return "UNKNOWN"
	}
}

// ParsePricingSide parses the wire literal for PricingSide. Unknown
// literals are a parse error per spec.md §7 ("unknown enum literal ...
// MUST treat as a parse error and skip the record").
func ParsePricingSide(s string) (PricingSide, error) {
	switch s {
	case "BID":
		return Bid, nil
	case "OFFER":
		return Offer, nil
	default:
		return 0, NewParseError("side", s, ErrUnknownEnum)
	}
}

// Side is the client side of an Inquiry: BUY or SELL.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

func ParseSide(s string) (Side, error) {
	switch s {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, NewParseError("side", s, ErrUnknownEnum)
	}
}

// OrderType is the execution order type.
type OrderType int

const (
	FOK OrderType = iota
	IOC
	Market
	Limit
	Stop
)

func (t OrderType) String() string {
	switch t {
	case FOK:
		return "FOK"
	case IOC:
		return "IOC"
	case Market:
		return "MARKET"
	case Limit:
		return "LIMIT"
	case Stop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}

// MarketVenue names a trading venue. Execution externalization currently
// ignores it entirely (spec.md §4.6) — it exists as a documented future
// extension point, wired only into a diagnostic log field.
type MarketVenue int

const (
	Brokertec MarketVenue = iota
	ESpeed
	CME
)

func (m MarketVenue) String() string {
	switch m {
	case Brokertec:
		return "BROKERTEC"
	case ESpeed:
		return "ESPEED"
	case CME:
		return "CME"
	default:
		return "UNKNOWN"
	}
}

// RouteMarket is the reserved routing extension point described in
// spec.md §4.6: it is never consulted to decide where an order goes,
// only surfaced for diagnostics.
func RouteMarket(ExecutionOrder) MarketVenue {
	return Brokertec
}

// InquiryState is the state machine state of an Inquiry (spec.md §4.7).
type InquiryState int

const (
	Received InquiryState = iota
	Quoted
	Done
	Rejected
	CustomerRejected
)

func (s InquiryState) String() string {
	switch s {
	case Received:
		return "RECEIVED"
	case Quoted:
		return "QUOTED"
	case Done:
		return "DONE"
	case Rejected:
		return "REJECTED"
	case CustomerRejected:
		return "CUSTOMER_REJECTED"
	default:
		return "UNKNOWN"
	}
}

func ParseInquiryState(s string) (InquiryState, error) {
	switch s {
	case "RECEIVED":
		return Received, nil
	case "QUOTED":
		return Quoted, nil
	case "DONE":
		return Done, nil
	case "REJECTED":
		return Rejected, nil
	case "CUSTOMER_REJECTED":
		return CustomerRejected, nil
	default:
		return 0, NewParseError("state", s, ErrUnknownEnum)
	}
}
