// Package report builds the time report returned by the hello endpoint.
package report

import (
	"fmt"
	"time"

	// Bundle the IANA database so Asia/Kolkata resolves on hosts without zoneinfo.
	_ "time/tzdata"
)

const (
	// TimeZone is both the label in every report and the zone timeIST is rendered in.
	TimeZone = "Asia/Kolkata"
	// Message is the fixed greeting.
	Message = "Hello from backend API!"

	utcLayout = "2006-01-02T15:04:05.000Z"
	// en-IN rendering of 2-digit date and time fields on a 12-hour clock.
	istLayout = "02/01/2006, 03:04:05 pm"
)

// TimeReport is the JSON body of GET /api/hello.
type TimeReport struct {
	Message  string `json:"message"`
	TimeUTC  string `json:"timeUTC"`
	TimeIST  string `json:"timeIST"`
	TimeZone string `json:"timeZone"`
	Service  string `json:"service"`
}

// Builder turns instants into reports for one service.
type Builder struct {
	service string
	loc     *time.Location
}

// NewBuilder resolves the report timezone.
func NewBuilder(service string) (*Builder, error) {
	loc, err := time.LoadLocation(TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", TimeZone, err)
	}
	return &Builder{service: service, loc: loc}, nil
}

// Build formats now both ways.
func (b *Builder) Build(now time.Time) TimeReport {
	return TimeReport{
		Message:  Message,
		TimeUTC:  FormatUTC(now),
		TimeIST:  now.In(b.loc).Format(istLayout),
		TimeZone: TimeZone,
		Service:  b.service,
	}
}

// FormatUTC renders t as an ISO-8601 instant with millisecond precision.
func FormatUTC(t time.Time) string {
	return t.UTC().Format(utcLayout)
}
