package handlers

import (
	"net/http"
	"time"

	"github.com/bengobox/clock-service/internal/clock"
	"github.com/bengobox/clock-service/internal/report"
)

// ReportBuilder formats an instant into a time report.
type ReportBuilder interface {
	Build(now time.Time) report.TimeReport
}

// HelloHandler serves the current time report.
type HelloHandler struct {
	clock   clock.Clock
	builder ReportBuilder
}

// NewHelloHandler constructs a handler.
func NewHelloHandler(c clock.Clock, builder ReportBuilder) *HelloHandler {
	return &HelloHandler{clock: c, builder: builder}
}

// Hello captures the current instant and writes it as a TimeReport.
func (h *HelloHandler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.builder.Build(h.clock.Now()))
}
