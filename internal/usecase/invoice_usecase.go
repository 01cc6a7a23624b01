package usecase

import (
	"context"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/rezaesmaeili3562-spec/login.b/internal/usecase/interfaces"
)

// IInvoiceUseCase renders a printable invoice document for a finalized
// order. Pure presentation over the orders collection; no state of its own.

type IInvoiceUseCase interface {
	RenderInvoice(ctx context.Context, orderID string) (string, error)
}

type InvoiceUseCase struct {
	orders interfaces.IOrderRepository
	tmpl   *template.Template
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(orders interfaces.IOrderRepository) *InvoiceUseCase {
	return &InvoiceUseCase{
		orders: orders,
		tmpl:   template.Must(template.New("invoice").Parse(invoiceTemplate)),
	}
}

// FormatCurrency renders an amount in the smallest currency unit with
// thousands grouping and the fixed currency label.
func FormatCurrency(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(d)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	return out + " تومان"
}

// FormatDate renders timestamps for documents in the storefront's fixed
// display format.
func FormatDate(t time.Time) string {
	return t.Format("2006/01/02 15:04")
}

type invoiceLine struct {
	Title     string
	Quantity  int
	UnitPrice string
	LineTotal string
}

type invoiceView struct {
	OrderID       string
	Date          string
	CustomerName  string
	CustomerPhone string
	Lines         []invoiceLine
	Total         string
	StatusLabel   string
}

// RenderInvoice looks the order up by id and produces the HTML document.
// Missing customer fields fall back to the fixed placeholders.
func (u *InvoiceUseCase) RenderInvoice(ctx context.Context, orderID string) (string, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.ID == "" {
		return "", ErrOrderNotFound
	}

	view := invoiceView{
		OrderID:       order.ID,
		Date:          FormatDate(order.CreatedAt),
		CustomerName:  "ناشناس",
		CustomerPhone: "نا مشخص",
		Total:         FormatCurrency(order.TotalAmount),
		StatusLabel:   order.Status.Label(),
	}
	if order.CustomerInfo != nil {
		if order.CustomerInfo.Name != "" {
			view.CustomerName = order.CustomerInfo.Name
		}
		if order.CustomerInfo.Phone != "" {
			view.CustomerPhone = order.CustomerInfo.Phone
		}
	}
	for _, it := range order.Items {
		view.Lines = append(view.Lines, invoiceLine{
			Title:     it.ServiceTitle,
			Quantity:  it.Quantity,
			UnitPrice: FormatCurrency(it.UnitPrice),
			LineTotal: FormatCurrency(it.TotalPrice),
		})
	}

	var b strings.Builder
	if err := u.tmpl.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

const invoiceTemplate = `<!DOCTYPE html>
<html lang="fa" dir="rtl">
<head>
<meta charset="UTF-8">
<title>فاکتور سفارش - {{.OrderID}}</title>
<style>
body { font-family: 'Vazirmatn', sans-serif; padding: 20px; direction: rtl; }
.invoice-header { text-align: center; border-bottom: 2px solid #333; padding-bottom: 20px; margin-bottom: 30px; }
.invoice-details { display: flex; justify-content: space-between; margin-bottom: 30px; }
.order-items { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
.order-items th, .order-items td { border: 1px solid #ddd; padding: 10px; text-align: right; }
.order-items th { background-color: #f2f2f2; }
.total-section { text-align: left; margin-top: 20px; padding-top: 20px; border-top: 2px solid #333; }
</style>
</head>
<body>
<div class="invoice-header">
<h1>فاکتور سفارش</h1>
<p>کافی‌نت - سامانه حرفه‌ای کافی‌شری</p>
</div>
<div class="invoice-details">
<div>
<p><strong>شماره سفارش:</strong> {{.OrderID}}</p>
<p><strong>تاریخ:</strong> {{.Date}}</p>
</div>
<div>
<p><strong>مشتری:</strong> {{.CustomerName}}</p>
<p><strong>تلفن:</strong> {{.CustomerPhone}}</p>
</div>
</div>
<table class="order-items">
<thead>
<tr><th>خدمت</th><th>تعداد</th><th>قیمت واحد</th><th>قیمت کل</th></tr>
</thead>
<tbody>
{{range .Lines}}<tr><td>{{.Title}}</td><td>{{.Quantity}}</td><td>{{.UnitPrice}}</td><td>{{.LineTotal}}</td></tr>
{{end}}</tbody>
</table>
<div class="total-section">
<p><strong>مجموع:</strong> {{.Total}}</p>
<p><strong>وضعیت:</strong> {{.StatusLabel}}</p>
</div>
</body>
</html>
`
