package services

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
)

// ReceiptService renders order receipts as PDF or HTML.
type ReceiptService struct {
	orderRepo    *repository.OrderRepository
	settingsRepo *repository.ReceiptSettingsRepository
}

func NewReceiptService(orderRepo *repository.OrderRepository, settingsRepo *repository.ReceiptSettingsRepository) *ReceiptService {
	return &ReceiptService{orderRepo: orderRepo, settingsRepo: settingsRepo}
}

// Generate renders a receipt for the order in the requested format.
// Returns the document bytes and its content type.
func (s *ReceiptService) Generate(orderID uuid.UUID, format models.ReceiptFormat, tmpl models.ReceiptTemplate) ([]byte, string, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", ErrOrderNotFound
	}

	settings, err := s.settingsRepo.GetOrCreate()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get receipt settings: %w", err)
	}

	if format == "" {
		format = models.ReceiptFormatPDF
	}
	if tmpl == "" {
		tmpl = settings.DefaultTemplate
	}

	data := s.buildReceiptData(order, settings, format, tmpl)

	switch format {
	case models.ReceiptFormatPDF:
		doc, err := s.generatePDF(data)
		return doc, "application/pdf", err
	case models.ReceiptFormatHTML:
		doc, err := s.generateHTML(data)
		return doc, "text/html", err
	default:
		return nil, "", fmt.Errorf("unsupported format: %s", format)
	}
}

// GetSettings returns the chain receipt settings.
func (s *ReceiptService) GetSettings() (*models.ReceiptSettings, error) {
	return s.settingsRepo.GetOrCreate()
}

// UpdateSettings applies partial updates to the receipt settings.
func (s *ReceiptService) UpdateSettings(req *models.ReceiptSettingsUpdateRequest) (*models.ReceiptSettings, error) {
	settings, err := s.settingsRepo.GetOrCreate()
	if err != nil {
		return nil, err
	}

	if req.DefaultTemplate != nil {
		settings.DefaultTemplate = *req.DefaultTemplate
	}
	if req.PrimaryColor != nil {
		settings.PrimaryColor = *req.PrimaryColor
	}
	if req.BusinessName != nil {
		settings.BusinessName = *req.BusinessName
	}
	if req.BusinessAddress != nil {
		settings.BusinessAddress = *req.BusinessAddress
	}
	if req.BusinessPhone != nil {
		settings.BusinessPhone = *req.BusinessPhone
	}
	if req.BusinessEmail != nil {
		settings.BusinessEmail = *req.BusinessEmail
	}
	if req.HeaderText != nil {
		settings.HeaderText = *req.HeaderText
	}
	if req.FooterText != nil {
		settings.FooterText = *req.FooterText
	}
	if req.ShowDiscountLine != nil {
		settings.ShowDiscountLine = *req.ShowDiscountLine
	}
	if req.Currency != nil {
		settings.Currency = *req.Currency
	}

	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// buildReceiptData derives the render model. The receipt number mirrors
// the order number: ORD-xxx becomes RCP-xxx.
func (s *ReceiptService) buildReceiptData(order *models.Order, settings *models.ReceiptSettings, format models.ReceiptFormat, tmpl models.ReceiptTemplate) *models.ReceiptData {
	suffix := order.OrderNumber
	if strings.HasPrefix(suffix, "ORD-") {
		suffix = suffix[4:]
	}

	symbol := getCurrencySymbol(settings.Currency)
	discount := order.TotalAmount - order.DiscountedAmount

	return &models.ReceiptData{
		ReceiptNumber:     fmt.Sprintf("RCP-%s", suffix),
		GeneratedAt:       time.Now(),
		Order:             order,
		Settings:          settings,
		Format:            format,
		Template:          tmpl,
		FormattedTotal:    formatCurrency(order.TotalAmount, symbol),
		FormattedDiscount: formatCurrency(discount, symbol),
		FormattedFinal:    formatCurrency(order.DiscountedAmount, symbol),
	}
}

func (s *ReceiptService) generatePDF(data *models.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	if data.Template != models.ReceiptTemplateSimple {
		s.addPDFHeader(m, data)
	}
	s.addPDFOrderDetails(m, data)
	s.addPDFItemsTable(m, data)
	s.addPDFTotals(m, data)
	s.addPDFFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func (s *ReceiptService) addPDFHeader(m core.Maroto, data *models.ReceiptData) {
	m.AddRow(30,
		col.New(6).Add(
			text.New(data.Settings.BusinessName, props.Text{
				Size:  16,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
			text.New(data.Settings.BusinessAddress, props.Text{
				Size:  9,
				Top:   8,
				Align: align.Left,
			}),
			text.New(data.Settings.BusinessPhone, props.Text{
				Size:  9,
				Top:   13,
				Align: align.Left,
			}),
		),
		col.New(6).Add(
			text.New("RECEIPT", props.Text{
				Size:  20,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
			text.New(fmt.Sprintf("# %s", data.ReceiptNumber), props.Text{
				Size:  10,
				Top:   8,
				Align: align.Right,
			}),
		),
	)
	m.AddRow(5, line.NewCol(12))
}

func (s *ReceiptService) addPDFOrderDetails(m core.Maroto, data *models.ReceiptData) {
	order := data.Order

	clientName := ""
	if order.Client != nil {
		clientName = order.Client.DisplayName()
	}
	pointName := ""
	if order.Point != nil {
		pointName = order.Point.Name
	}

	m.AddRow(20,
		col.New(6).Add(
			text.New(fmt.Sprintf("Order #: %s", order.OrderNumber), props.Text{
				Size:  10,
				Align: align.Left,
			}),
			text.New(fmt.Sprintf("Date: %s", order.Date.Format("Jan 02, 2006")), props.Text{
				Size:  10,
				Top:   5,
				Align: align.Left,
			}),
			text.New(fmt.Sprintf("Client: %s", clientName), props.Text{
				Size:  10,
				Top:   10,
				Align: align.Left,
			}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Status: %s", order.Status), props.Text{
				Size:  10,
				Align: align.Right,
			}),
			text.New(fmt.Sprintf("Payment: %s", order.Payment), props.Text{
				Size:  10,
				Top:   5,
				Align: align.Right,
			}),
			text.New(fmt.Sprintf("Point: %s", pointName), props.Text{
				Size:  10,
				Top:   10,
				Align: align.Right,
			}),
		),
	)
	m.AddRow(5, line.NewCol(12))
}

func (s *ReceiptService) addPDFItemsTable(m core.Maroto, data *models.ReceiptData) {
	m.AddRow(8,
		col.New(6).Add(
			text.New("Service", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
		),
		col.New(2).Add(
			text.New("Qty", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Center,
			}),
		),
		col.New(2).Add(
			text.New("Price", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
		col.New(2).Add(
			text.New("Total", props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
	)
	m.AddRow(2, line.NewCol(12))

	symbol := getCurrencySymbol(data.Settings.Currency)
	for _, item := range data.Order.Items {
		m.AddRow(8,
			col.New(6).Add(
				text.New(item.ServiceName, props.Text{
					Size:  9,
					Align: align.Left,
				}),
			),
			col.New(2).Add(
				text.New(fmt.Sprintf("%d", item.Quantity), props.Text{
					Size:  9,
					Align: align.Center,
				}),
			),
			col.New(2).Add(
				text.New(formatCurrency(item.UnitPrice, symbol), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			),
			col.New(2).Add(
				text.New(formatCurrency(item.LineDiscounted, symbol), props.Text{
					Size:  9,
					Align: align.Right,
				}),
			),
		)
	}
	m.AddRow(3, line.NewCol(12))
}

func (s *ReceiptService) addPDFTotals(m core.Maroto, data *models.ReceiptData) {
	m.AddRow(6,
		col.New(8),
		col.New(2).Add(
			text.New("Subtotal:", props.Text{
				Size:  10,
				Align: align.Right,
			}),
		),
		col.New(2).Add(
			text.New(data.FormattedTotal, props.Text{
				Size:  10,
				Align: align.Right,
			}),
		),
	)

	if data.Settings.ShowDiscountLine && data.Order.TotalAmount > data.Order.DiscountedAmount {
		m.AddRow(6,
			col.New(8),
			col.New(2).Add(
				text.New("Discount:", props.Text{
					Size:  10,
					Align: align.Right,
				}),
			),
			col.New(2).Add(
				text.New("-"+data.FormattedDiscount, props.Text{
					Size:  10,
					Align: align.Right,
				}),
			),
		)
	}

	m.AddRow(2, col.New(8), line.NewCol(4))
	m.AddRow(8,
		col.New(8),
		col.New(2).Add(
			text.New("TOTAL:", props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
		col.New(2).Add(
			text.New(data.FormattedFinal, props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
	)
}

func (s *ReceiptService) addPDFFooter(m core.Maroto, data *models.ReceiptData) {
	m.AddRow(10)

	if data.Settings.FooterText != "" {
		m.AddRow(10,
			col.New(12).Add(
				text.New(data.Settings.FooterText, props.Text{
					Size:  9,
					Align: align.Center,
				}),
			),
		)
	}

	m.AddRow(10,
		col.New(12).Add(
			text.New(fmt.Sprintf("Generated on %s", data.GeneratedAt.Format("Jan 02, 2006 15:04")), props.Text{
				Size:  8,
				Align: align.Center,
				Color: &props.Color{Red: 128, Green: 128, Blue: 128},
			}),
		),
	)
}

func (s *ReceiptService) generateHTML(data *models.ReceiptData) ([]byte, error) {
	tmpl, err := template.New("receipt").Parse(receiptHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}
	return buf.Bytes(), nil
}

func getCurrencySymbol(currency string) string {
	symbols := map[string]string{
		"RUB": "₽",
		"USD": "$",
		"EUR": "€",
		"KZT": "₸",
	}
	if symbol, ok := symbols[strings.ToUpper(currency)]; ok {
		return symbol
	}
	return currency + " "
}

func formatCurrency(amount float64, symbol string) string {
	return fmt.Sprintf("%.2f %s", amount, symbol)
}

const receiptHTMLTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Receipt - {{.ReceiptNumber}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.5;
            color: #333;
            max-width: 700px;
            margin: 0 auto;
            padding: 20px;
        }
        .receipt { border: 1px solid #ddd; border-radius: 8px; padding: 30px; background: #fff; }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            padding-bottom: 20px;
            border-bottom: 2px solid {{.Settings.PrimaryColor}};
        }
        .business-info h1 { color: {{.Settings.PrimaryColor}}; font-size: 22px; margin-bottom: 5px; }
        .business-info p { color: #666; font-size: 14px; }
        .receipt-title { text-align: right; }
        .receipt-title h2 { font-size: 26px; color: {{.Settings.PrimaryColor}}; }
        .receipt-title p { color: #666; font-size: 14px; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
        th {
            background: #f5f5f5;
            padding: 10px;
            text-align: left;
            font-size: 12px;
            text-transform: uppercase;
            color: #666;
        }
        td { padding: 10px; border-bottom: 1px solid #eee; font-size: 14px; }
        .text-right { text-align: right; }
        .text-center { text-align: center; }
        .totals { margin-left: auto; width: 280px; }
        .totals-row { display: flex; justify-content: space-between; padding: 6px 0; font-size: 14px; }
        .totals-row.total {
            border-top: 2px solid #333;
            font-weight: bold;
            font-size: 18px;
            padding-top: 10px;
        }
        .footer {
            text-align: center;
            color: #666;
            font-size: 14px;
            padding-top: 20px;
            border-top: 1px solid #eee;
        }
        .generated { font-size: 12px; color: #999; margin-top: 10px; }
    </style>
</head>
<body>
    <div class="receipt">
        {{if ne .Template "simple"}}
        <div class="header">
            <div class="business-info">
                <h1>{{.Settings.BusinessName}}</h1>
                {{if .Settings.BusinessAddress}}<p>{{.Settings.BusinessAddress}}</p>{{end}}
                {{if .Settings.BusinessPhone}}<p>{{.Settings.BusinessPhone}}</p>{{end}}
                {{if .Settings.BusinessEmail}}<p>{{.Settings.BusinessEmail}}</p>{{end}}
            </div>
            <div class="receipt-title">
                <h2>RECEIPT</h2>
                <p># {{.ReceiptNumber}}</p>
                <p>Order: {{.Order.OrderNumber}}</p>
                <p>{{.Order.Date.Format "Jan 02, 2006"}}</p>
            </div>
        </div>
        {{end}}

        <table>
            <thead>
                <tr>
                    <th>Service</th>
                    <th class="text-center">Qty</th>
                    <th class="text-right">Price</th>
                    <th class="text-right">Total</th>
                </tr>
            </thead>
            <tbody>
                {{range .Order.Items}}
                <tr>
                    <td>{{.ServiceName}}</td>
                    <td class="text-center">{{.Quantity}}</td>
                    <td class="text-right">{{printf "%.2f" .UnitPrice}}</td>
                    <td class="text-right">{{printf "%.2f" .LineDiscounted}}</td>
                </tr>
                {{end}}
            </tbody>
        </table>

        <div class="totals">
            <div class="totals-row">
                <span>Subtotal</span>
                <span>{{.FormattedTotal}}</span>
            </div>
            {{if .Settings.ShowDiscountLine}}
            {{if gt .Order.TotalAmount .Order.DiscountedAmount}}
            <div class="totals-row">
                <span>Discount</span>
                <span>-{{.FormattedDiscount}}</span>
            </div>
            {{end}}
            {{end}}
            <div class="totals-row total">
                <span>Total</span>
                <span>{{.FormattedFinal}}</span>
            </div>
        </div>

        <div class="footer">
            {{if .Settings.FooterText}}<p>{{.Settings.FooterText}}</p>{{end}}
            <p class="generated">Generated on {{.GeneratedAt.Format "Jan 02, 2006 15:04"}}</p>
        </div>
    </div>
</body>
</html>`
