package domain

import "time"

// Product is the generic product parameter named T/P throughout spec.md.
// The fabric only ever instantiates Bond today; keeping it as an
// interface rather than a Go type parameter is the portable analog
// spec.md §9 calls out when monomorphization isn't warranted.
type Product interface {
	ProductID() string
}

// IdentifierType tags the kind of identifier a Bond carries. CUSIP is
// the only value this system produces, but the field exists so a future
// non-Treasury product could carry ISIN, SEDOL, etc.
type IdentifierType int

const (
	CUSIP IdentifierType = iota
)

func (t IdentifierType) String() string {
	switch t {
	case CUSIP:
		return "CUSIP"
	default:
		return "UNKNOWN"
	}
}

// Bond is the sole Product this system trades: a US Treasury security.
// Immutable once constructed.
type Bond struct {
	id             string
	identifierType IdentifierType
	ticker         string
	coupon         float64
	maturity       time.Time
}

// NewBond constructs a Bond. maturity uses the "2006/01/02" layout to
// match the original data generators' date literals.
func NewBond(id string, idType IdentifierType, ticker string, coupon float64, maturity time.Time) Bond {
	return Bond{id: id, identifierType: idType, ticker: ticker, coupon: coupon, maturity: maturity}
}

func (b Bond) ProductID() string             { return b.id }
func (b Bond) IdentifierType() IdentifierType { return b.identifierType }
func (b Bond) Ticker() string                 { return b.ticker }
func (b Bond) Coupon() float64                { return b.coupon }
func (b Bond) Maturity() time.Time            { return b.maturity }

func mustDate(layout, value string) time.Time {
	t, err := time.Parse(layout, value)
	if err != nil {
		// Only ever called with the literal dates below; a typo here is
		// a programmer error, not a runtime one.
		panic(err)
	}
	return t
}

// bondRecord is the registry entry shape used to build the CUSIP table.
type bondRecord struct {
	bond Bond
	pv01 float64
}

// registry is the fixed set of CUSIPs this system recognizes, per
// spec.md §6 and original_source/functions.hpp's GetBond/GetPV01Value.
var registry = map[string]bondRecord{
	"9128283H1": {NewBond("9128283H1", CUSIP, "US2Y", 0.01750, mustDate("2006/01/02", "2019/11/30")), 0.01948992},
	"9128283L2": {NewBond("9128283L2", CUSIP, "US3Y", 0.01875, mustDate("2006/01/02", "2020/12/15")), 0.02865304},
	"912828M80": {NewBond("912828M80", CUSIP, "US5Y", 0.02000, mustDate("2006/01/02", "2022/11/30")), 0.04581119},
	"9128283J7": {NewBond("9128283J7", CUSIP, "US7Y", 0.02125, mustDate("2006/01/02", "2024/11/30")), 0.06127718},
	"9128283F5": {NewBond("9128283F5", CUSIP, "US10Y", 0.02250, mustDate("2006/01/02", "2027/12/15")), 0.08161449},
	"912810RZ3": {NewBond("912810RZ3", CUSIP, "US30Y", 0.02750, mustDate("2006/01/02", "2047/12/15")), 0.15013155},
}

// Registry maps CUSIP identifiers to Bond metadata and PV01 (C2).
type Registry struct{}

// NewRegistry returns the fixed product registry. There is no mutable
// state; the zero value is usable.
func NewRegistry() Registry { return Registry{} }

// Lookup returns the Bond for a CUSIP, or a default-constructed (zero
// value) Bond plus ok=false if the CUSIP is unknown. Per spec.md §4.8
// and §9, callers MUST still accept the zero Bond for an unknown CUSIP
// — ok exists only so a caller can log a diagnostic, not to change the
// externally observable mapping for known CUSIPs.
func (Registry) Lookup(cusip string) (Bond, bool) {
	rec, ok := registry[cusip]
	if !ok {
		return Bond{}, false
	}
	return rec.bond, true
}

// PV01 returns the price value of a basis point for a CUSIP.
func (Registry) PV01(cusip string) (float64, bool) {
	rec, ok := registry[cusip]
	if !ok {
		return 0, false
	}
	return rec.pv01, true
}
