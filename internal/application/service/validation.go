package service

import (
	"errors"
	"strings"
	"time"

	"github.com/ahamedrahman2000/njv-travels/internal/domain/ledger"
	"github.com/ahamedrahman2000/njv-travels/pkg/apperror"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// fieldErrors collects every failing field so the operator sees all of
// them in one response
type fieldErrors []apperror.FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, apperror.FieldError{Field: field, Message: message})
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apperror.NewValidationError(f)
}

func (f *fieldErrors) text(field, label, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		f.add(field, label+" is required")
	}
	return value
}

func (f *fieldErrors) money(field, label, value string) ledger.Money {
	m, err := ledger.ParseAmount(value)
	if err != nil {
		f.add(field, label+" "+err.Error())
		return 0
	}
	return m
}

func (f *fieldErrors) nonNegativeMoney(field, label, value string) ledger.Money {
	m, err := ledger.ParseAmount(value)
	if err == nil && m < 0 {
		err = ledger.ErrNegative
	}
	if err != nil {
		f.add(field, label+" "+err.Error())
		return 0
	}
	return m
}

func (f *fieldErrors) distance(field, label, value string) ledger.Distance {
	d, err := ledger.ParseDistance(value)
	if err != nil {
		f.add(field, label+" "+err.Error())
		return 0
	}
	return d
}

func (f *fieldErrors) date(field, label, value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		f.add(field, label+" is required")
		return nil
	}
	d, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		f.add(field, label+" must be a date in YYYY-MM-DD format")
		return nil
	}
	return &d
}

func (f *fieldErrors) clock(field, label, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		f.add(field, label+" is required")
		return ""
	}
	if _, err := time.Parse(timeLayout, value); err != nil {
		f.add(field, label+" must be a time in HH:MM format")
		return ""
	}
	return value
}

// ParseDate parses an optional YYYY-MM-DD query value
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return nil, errors.New("date must be in YYYY-MM-DD format")
	}
	return &d, nil
}
