package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ressit/ressit-pos-api/models"
)

const (
	// WindowLayout formats the report window bounds.
	WindowLayout = "2006-01-02 15:04:05"
	// CurrencySuffix follows every formatted amount.
	CurrencySuffix = " TL"
)

// taxGroup matches orders whose stored TaxValue equals value (a percentage)
// and splits their gross total with the fractional rate.
type taxGroup struct {
	value decimal.Decimal
	rate  decimal.Decimal
	label string
}

var (
	kdv81 = taxGroup{
		value: decimal.RequireFromString("8.1"),
		rate:  decimal.RequireFromString("0.081"),
		label: "8.1% KDV A",
	}
	kdv26 = taxGroup{
		value: decimal.RequireFromString("2.6"),
		rate:  decimal.RequireFromString("0.026"),
		label: "2.6% KDV B",
	}
)

// ZReport is the end-of-day summary for one calendar day.
type ZReport struct {
	Start      string            `json:"start"`
	End        string            `json:"end"`
	TotalSales SalesSummary      `json:"totalSales"`
	MainGroups MainGroups        `json:"mainGroups"`
	Taxes      Taxes             `json:"taxes"`
	Categories []CategorySummary `json:"categories"`
}

type SalesSummary struct {
	OrderCount int    `json:"orderCount"`
	Amount     string `json:"amount"`
}

// MainGroups has a single food bucket that mirrors the overall totals.
type MainGroups struct {
	Food SalesSummary `json:"food"`
}

type Taxes struct {
	KDV81 TaxBreakdown `json:"kdv81"`
	KDV26 TaxBreakdown `json:"kdv26"`
}

type TaxBreakdown struct {
	Rate  string `json:"rate"`
	Gross string `json:"gross"`
	Net   string `json:"net"`
	Tax   string `json:"tax"`
}

type CategorySummary struct {
	CategoryName string `json:"categoryName"`
	OrderCount   int    `json:"orderCount"`
	TotalAmount  string `json:"totalAmount"`
}

// DayWindow returns 00:00:00 and 23:59:59 of day in day's location.
func DayWindow(day time.Time) (start, end time.Time) {
	y, m, d := day.Date()
	loc := day.Location()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), time.Date(y, m, d, 23, 59, 59, 0, loc)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2) + CurrencySuffix
}

func (g taxGroup) breakdown(orders []models.Order) TaxBreakdown {
	gross := decimal.Zero
	for _, o := range orders {
		if o.TaxValue.Equal(g.value) {
			gross = gross.Add(o.TotalPrice)
		}
	}
	net := gross.Div(decimal.NewFromInt(1).Add(g.rate))
	return TaxBreakdown{
		Rate:  g.label,
		Gross: formatAmount(gross),
		Net:   formatAmount(net),
		Tax:   formatAmount(gross.Sub(net)),
	}
}

// Aggregate builds the Z-Report for day from orders that are already
// restricted to the day window.
func Aggregate(day time.Time, orders []models.Order) ZReport {
	start, end := DayWindow(day)

	total := decimal.Zero
	var categories []CategorySummary
	amounts := map[string]decimal.Decimal{}
	index := map[string]int{}
	for _, o := range orders {
		total = total.Add(o.TotalPrice)

		i, ok := index[o.CategoryName]
		if !ok {
			i = len(categories)
			index[o.CategoryName] = i
			categories = append(categories, CategorySummary{CategoryName: o.CategoryName})
		}
		categories[i].OrderCount++
		amounts[o.CategoryName] = amounts[o.CategoryName].Add(o.TotalPrice)
	}
	for i := range categories {
		categories[i].TotalAmount = formatAmount(amounts[categories[i].CategoryName])
	}
	if categories == nil {
		categories = []CategorySummary{}
	}

	sales := SalesSummary{OrderCount: len(orders), Amount: formatAmount(total)}
	return ZReport{
		Start:      start.Format(WindowLayout),
		End:        end.Format(WindowLayout),
		TotalSales: sales,
		MainGroups: MainGroups{Food: sales},
		Taxes: Taxes{
			KDV81: kdv81.breakdown(orders),
			KDV26: kdv26.breakdown(orders),
		},
		Categories: categories,
	}
}
