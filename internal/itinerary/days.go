package itinerary

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for day dates.
const DateLayout = "2006-01-02"

var (
	ErrDayIndex        = errors.New("day index out of range")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrInvalidMealPlan = errors.New("unknown meal plan")
)

type MealPlan string

const (
	MealsNone            MealPlan = "none"
	MealsBreakfast       MealPlan = "breakfast"
	MealsBreakfastDinner MealPlan = "breakfast_dinner"
	MealsAll             MealPlan = "all_meals"
	MealsDinner          MealPlan = "dinner"
)

var mealPlanLabels = map[MealPlan]string{
	MealsNone:            "No Meals",
	MealsBreakfast:       "Breakfast Only",
	MealsBreakfastDinner: "Breakfast & Dinner",
	MealsAll:             "All Meals (B+L+D)",
	MealsDinner:          "Dinner Only",
}

// Label resolves the display label, falling back to "No Meals".
func (m MealPlan) Label() string {
	if l, ok := mealPlanLabels[m]; ok {
		return l
	}
	return mealPlanLabels[MealsNone]
}

func (m MealPlan) Valid() bool {
	_, ok := mealPlanLabels[m]
	return ok
}

type DayField string

const (
	DayDate       DayField = "date"
	DayHeader     DayField = "header"
	DayActivities DayField = "activities"
	DayMealPlan   DayField = "mealPlan"
)

// Day is one entry of the itinerary. Date is empty or a DateLayout string.
type Day struct {
	Date       string   `json:"date,omitempty"`
	Header     string   `json:"header,omitempty"`
	Activities string   `json:"activities"`
	MealPlan   MealPlan `json:"mealPlan"`
}

// Time parses the day's date. ok is false when the day has no date.
func (d Day) Time() (t time.Time, ok bool) {
	if d.Date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Days is the ordered day sequence of an itinerary.
type Days []Day

// NewDays returns the default sequence of one blank day.
func NewDays() Days {
	return Days{{MealPlan: MealsNone}}
}

// Add appends a blank day dated one day after the last day, if it had a date.
func (d *Days) Add() {
	next := Day{MealPlan: MealsNone}
	if n := len(*d); n > 0 {
		if t, ok := (*d)[n-1].Time(); ok {
			next.Date = t.AddDate(0, 0, 1).Format(DateLayout)
		}
	}
	*d = append(*d, next)
}

// Remove deletes the day at index. Dates of the remaining days are kept.
func (d *Days) Remove(index int) error {
	if index < 0 || index >= len(*d) {
		return fmt.Errorf("%w: %d", ErrDayIndex, index)
	}
	*d = append((*d)[:index:index], (*d)[index+1:]...)
	return nil
}

// Update sets one field of the day at index. Setting a date re-anchors every
// later day to newDate + (position - index) days. Clearing a date only
// affects the target day.
func (d Days) Update(index int, field DayField, value string) error {
	if index < 0 || index >= len(d) {
		return fmt.Errorf("%w: %d", ErrDayIndex, index)
	}
	switch field {
	case DayHeader:
		d[index].Header = value
	case DayActivities:
		d[index].Activities = value
	case DayMealPlan:
		mp := MealPlan(value)
		if value == "" {
			mp = MealsNone
		}
		if !mp.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidMealPlan, value)
		}
		d[index].MealPlan = mp
	case DayDate:
		if value == "" {
			d[index].Date = ""
			return nil
		}
		anchor, err := time.Parse(DateLayout, value)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, value)
		}
		for i := index; i < len(d); i++ {
			d[i].Date = anchor.AddDate(0, 0, i-index).Format(DateLayout)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Clone returns an independent copy.
func (d Days) Clone() Days {
	if d == nil {
		return nil
	}
	out := make(Days, len(d))
	copy(out, d)
	return out
}

// Span returns the earliest and latest dates among the days.
func (d Days) Span() (first, last time.Time, ok bool) {
	for _, day := range d {
		t, has := day.Time()
		if !has {
			continue
		}
		if !ok || t.Before(first) {
			first = t
		}
		if !ok || t.After(last) {
			last = t
		}
		ok = true
	}
	return first, last, ok
}

// DateRange summarises the span as "Jan 10 - Jan 12, 2024", or "N/A".
func (d Days) DateRange() string {
	first, last, ok := d.Span()
	if !ok {
		return "N/A"
	}
	return first.Format("Jan 2") + " - " + last.Format("Jan 2, 2006")
}
