package itinerary

import (
	"errors"
	"fmt"
	"math/bits"
	"regexp"
	"strconv"
)

// GSTPercent is the goods and services tax rate applied when IncludeGST is set.
const GSTPercent = 18

// MaxAmount bounds every count, cost per head, subtotal and package amount,
// keeping GST and totals exact in both int64 and float64.
const MaxAmount int64 = 999_999_999_999

var (
	ErrInvalidNumber    = errors.New("value must be empty or digits only")
	ErrUnknownTier      = errors.New("unknown participant tier")
	ErrUnknownField     = errors.New("unknown field")
	ErrOverrideDisabled = errors.New("manual override is not enabled")
)

var digitsOnly = regexp.MustCompile(`^\d*$`)

type Tier string

const (
	Adults   Tier = "adults"
	Children Tier = "children"
	Infants  Tier = "infants"
)

// Tiers lists the participant tiers in display order.
var Tiers = []Tier{Adults, Children, Infants}

// Label is the heading used for a tier on the printed document.
func (t Tier) Label() string {
	switch t {
	case Adults:
		return "Adults (10+)"
	case Children:
		return "Children (5-10)"
	case Infants:
		return "Infants (under 5)"
	}
	return string(t)
}

type TierField string

const (
	FieldCount       TierField = "count"
	FieldCostPerHead TierField = "costPerHead"
)

type Participant struct {
	Count       int64 `json:"count"`
	CostPerHead int64 `json:"costPerHead"`
}

func (p Participant) Subtotal() int64 {
	return p.Count * p.CostPerHead
}

type Participants struct {
	Adults   Participant `json:"adults"`
	Children Participant `json:"children"`
	Infants  Participant `json:"infants"`
}

func (p *Participants) tier(t Tier) (*Participant, error) {
	switch t {
	case Adults:
		return &p.Adults, nil
	case Children:
		return &p.Children, nil
	case Infants:
		return &p.Infants, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTier, t)
}

// Get returns the participant entry for t, or a zero value for an unknown tier.
func (p Participants) Get(t Tier) Participant {
	pt, err := p.tier(t)
	if err != nil {
		return Participant{}
	}
	return *pt
}

// AutoTotal is the sum of count × cost per head over all tiers.
func (p Participants) AutoTotal() int64 {
	return p.Adults.Subtotal() + p.Children.Subtotal() + p.Infants.Subtotal()
}

// checkedTotal is AutoTotal, failing with ErrInvalidNumber when a subtotal
// or the sum would exceed MaxAmount.
func (p Participants) checkedTotal() (int64, error) {
	var sum int64
	for _, pt := range []Participant{p.Adults, p.Children, p.Infants} {
		hi, lo := bits.Mul64(uint64(pt.Count), uint64(pt.CostPerHead))
		if hi != 0 || lo > uint64(MaxAmount) {
			return 0, fmt.Errorf("%w: subtotal exceeds %d", ErrInvalidNumber, MaxAmount)
		}
		sum += int64(lo)
	}
	if sum > MaxAmount {
		return 0, fmt.Errorf("%w: package amount exceeds %d", ErrInvalidNumber, MaxAmount)
	}
	return sum, nil
}

// ParseAmount accepts an empty string or a string of digits no larger than
// MaxAmount. Empty yields 0.
func ParseAmount(value string) (int64, error) {
	if !digitsOnly.MatchString(value) {
		return 0, ErrInvalidNumber
	}
	if value == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}
	if n > MaxAmount {
		return 0, fmt.Errorf("%w: exceeds %d", ErrInvalidNumber, MaxAmount)
	}
	return n, nil
}

// Pricing holds participant tiers and the package amount. PackageAmount is
// kept in sync with the tiers unless IsManualTotal is set.
type Pricing struct {
	Participants  Participants `json:"participants"`
	IncludeGST    bool         `json:"includeGST"`
	IsManualTotal bool         `json:"isManualTotal"`
	PackageAmount int64        `json:"packageAmount"`
	ManualAmount  string       `json:"manualAmount"`
}

// SetTierField updates a tier's count or cost per head. Invalid input leaves
// the pricing untouched.
func (p *Pricing) SetTierField(tier Tier, field TierField, value string) error {
	n, err := ParseAmount(value)
	if err != nil {
		return err
	}
	parts := p.Participants
	pt, err := parts.tier(tier)
	if err != nil {
		return err
	}
	switch field {
	case FieldCount:
		pt.Count = n
	case FieldCostPerHead:
		pt.CostPerHead = n
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	total, err := parts.checkedTotal()
	if err != nil {
		return err
	}
	p.Participants = parts
	if !p.IsManualTotal {
		p.PackageAmount = total
	}
	return nil
}

// SetManualOverride switches between manual and automatic package amounts.
// Turning the override off discards the manual text and recomputes.
func (p *Pricing) SetManualOverride(enabled bool) {
	p.IsManualTotal = enabled
	if !enabled {
		p.ManualAmount = ""
		p.PackageAmount = p.Participants.AutoTotal()
	}
}

func (p *Pricing) SetManualAmount(value string) error {
	if !p.IsManualTotal {
		return ErrOverrideDisabled
	}
	n, err := ParseAmount(value)
	if err != nil {
		return err
	}
	p.ManualAmount = value
	p.PackageAmount = n
	return nil
}

func (p *Pricing) SetTaxIncluded(include bool) {
	p.IncludeGST = include
}

// GSTAmount is derived on every read from PackageAmount and IncludeGST.
func (p Pricing) GSTAmount() float64 {
	if !p.IncludeGST {
		return 0
	}
	return float64(p.PackageAmount*GSTPercent) / 100
}

func (p Pricing) TotalAmount() float64 {
	return float64(p.PackageAmount) + p.GSTAmount()
}
