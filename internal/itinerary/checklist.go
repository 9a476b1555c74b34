package itinerary

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrUnknownCategory = errors.New("unknown checklist category")
	ErrItemIndex       = errors.New("checklist index out of range")
	ErrEmptyItem       = errors.New("checklist item text is empty")
)

type Category string

const (
	Inclusions Category = "inclusions"
	Exclusions Category = "exclusions"
	Terms      Category = "terms"
)

var Categories = []Category{Inclusions, Exclusions, Terms}

var defaultItems = map[Category][]string{
	Inclusions: {
		"Hotel Accommodation",
		"Breakfast",
		"Airport Transfers",
		"Sightseeing as per itinerary",
		"Tour Guide",
	},
	Exclusions: {
		"Airfare",
		"Lunch and Dinner",
		"Entry Fees",
		"Personal Expenses",
		"Travel Insurance",
	},
	Terms: {
		"50% advance payment is required to confirm the booking",
		"Balance payment is due 7 days before departure",
		"Cancellations within 15 days of departure are non-refundable",
		"Hotel check-in and check-out times are as per hotel policy",
		"Rates are subject to change without prior notice until the booking is confirmed",
	},
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := defaultItems[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Defaults returns a copy of the built-in items for c.
func Defaults(c Category) []string {
	return slices.Clone(defaultItems[c])
}

func IsDefault(c Category, text string) bool {
	return slices.Contains(defaultItems[c], text)
}

type Item struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Checklist is one of the inclusion, exclusion or terms lists.
type Checklist struct {
	Category Category `json:"category"`
	Items    []Item   `json:"items"`
}

// NewChecklist seeds the defaults followed by the stored custom items, all
// checked. Custom entries that repeat a default or each other are dropped.
func NewChecklist(c Category, custom []string) Checklist {
	defaults := defaultItems[c]
	seen := make(map[string]bool, len(defaults)+len(custom))
	items := make([]Item, 0, len(defaults)+len(custom))
	for _, text := range defaults {
		seen[text] = true
		items = append(items, Item{Text: text, Checked: true})
	}
	for _, text := range custom {
		text = strings.TrimSpace(text)
		if text == "" || seen[text] {
			continue
		}
		seen[text] = true
		items = append(items, Item{Text: text, Checked: true})
	}
	return Checklist{Category: c, Items: items}
}

// WithItem returns a copy of the checklist with text appended as a checked
// item. The receiver is not modified.
func (c Checklist) WithItem(text string) (Checklist, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return c, ErrEmptyItem
	}
	next := c.Clone()
	next.Items = append(next.Items, Item{Text: text, Checked: true})
	return next, nil
}

// Custom is the de-duplicated set of item texts that are not defaults, in
// list order. This is what gets persisted.
func (c Checklist) Custom() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, it := range c.Items {
		if IsDefault(c.Category, it.Text) || seen[it.Text] {
			continue
		}
		seen[it.Text] = true
		out = append(out, it.Text)
	}
	return out
}

// Toggle flips the checked flag of the item at index.
func (c *Checklist) Toggle(index int) error {
	if index < 0 || index >= len(c.Items) {
		return fmt.Errorf("%w: %d", ErrItemIndex, index)
	}
	c.Items[index].Checked = !c.Items[index].Checked
	return nil
}

// Checked returns the texts of checked items.
func (c Checklist) Checked() []string {
	out := []string{}
	for _, it := range c.Items {
		if it.Checked {
			out = append(out, it.Text)
		}
	}
	return out
}

func (c Checklist) Clone() Checklist {
	return Checklist{Category: c.Category, Items: slices.Clone(c.Items)}
}
