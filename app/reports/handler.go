package reports

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ressit/ressit-pos-api/app/respond"
	"github.com/ressit/ressit-pos-api/models"
)

var (
	errMissingDate = errors.New("reportDate is required")
	errInvalidBody = errors.New("invalid JSON body")
	errInvalidDate = errors.New("reportDate must be a date such as 2024-05-17")
)

// reportDateLayouts are tried in order; only the calendar date is used.
var reportDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

type OrderSource interface {
	GetOrdersBetween(ctx context.Context, start, end time.Time) ([]models.Order, error)
}

type ZReportHandler struct {
	orders   OrderSource
	location *time.Location
	log      *zap.Logger
}

// NewZReportHandler interprets report dates in loc.
func NewZReportHandler(orders OrderSource, loc *time.Location, log *zap.Logger) *ZReportHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ZReportHandler{orders: orders, location: loc, log: log}
}

func (h *ZReportHandler) RegisterRoutes(r chi.Router) {
	r.Post("/generateZReport", h.HandleGenerate)
}

func (h *ZReportHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	day, err := h.reportDate(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	start, end := DayWindow(day)
	orders, err := h.orders.GetOrdersBetween(r.Context(), start, end)
	if err != nil {
		h.log.Error("load orders for z report", zap.Error(err), zap.Time("day", day))
		respond.Error(w, http.StatusInternalServerError, "failed to generate z report")
		return
	}

	report := Aggregate(day, orders)
	h.log.Info("z report generated",
		zap.String("start", report.Start),
		zap.Int("orders", report.TotalSales.OrderCount),
		zap.String("total", report.TotalSales.Amount),
	)
	respond.JSON(w, http.StatusOK, report)
}

// reportDate reads reportDate from the query string, falling back to a
// JSON body {"reportDate": "..."}.
func (h *ZReportHandler) reportDate(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("reportDate")
	if raw == "" && r.Body != nil {
		var body struct {
			ReportDate string `json:"reportDate"`
		}
		if err := respond.Decode(r, &body); err != nil && !errors.Is(err, io.EOF) {
			return time.Time{}, errInvalidBody
		}
		raw = body.ReportDate
	}
	if raw == "" {
		return time.Time{}, errMissingDate
	}

	for _, layout := range reportDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, h.location); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, h.location), nil
		}
	}
	return time.Time{}, errInvalidDate
}
