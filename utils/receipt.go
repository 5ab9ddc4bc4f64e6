package utils

import (
	"bytes"
	"html/template"
	"time"

	"pastel-pos/dtos"
	"pastel-pos/models"
)

type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Subtotal  float64
}

// ReceiptData feeds the printable receipt. ClientName, CashReceived and
// Change come in as explicit parameters; none of them live on the sale row.
type ReceiptData struct {
	SaleID       uint
	IssuedAt     string
	ClientName   string
	Lines        []ReceiptLine
	Total        float64
	PaymentLabel string
	ShowChange   bool
	CashReceived float64
	Change       float64
}

const receiptTemplate = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Recibo #{{.SaleID}}</title>
<style>
body { font-family: monospace; max-width: 320px; margin: 0 auto; }
h1 { font-size: 16px; text-align: center; }
table { width: 100%; border-collapse: collapse; }
td { padding: 2px 0; }
td.num { text-align: right; }
.total { border-top: 1px dashed #000; font-weight: bold; }
.footer { text-align: center; margin-top: 12px; }
</style>
</head>
<body onload="window.print()">
<h1>Pastel da Praça</h1>
<p>Venda #{{.SaleID}}<br>{{.IssuedAt}}</p>
{{if .ClientName}}<p>Cliente: {{.ClientName}}</p>{{end}}
<table>
{{range .Lines}}<tr>
<td>{{.Name}}</td>
<td class="num">{{.Quantity}} x {{printf "%.2f" .UnitPrice}}</td>
<td class="num">R$ {{printf "%.2f" .Subtotal}}</td>
</tr>
{{end}}<tr class="total"><td>Total</td><td></td><td class="num">R$ {{printf "%.2f" .Total}}</td></tr>
</table>
<p>Pagamento: {{.PaymentLabel}}</p>
{{if .ShowChange}}<p>Recebido: R$ {{printf "%.2f" .CashReceived}}<br>
Troco: R$ {{printf "%.2f" .Change}}</p>{{end}}
<p class="footer">Obrigado pela preferência!</p>
</body>
</html>
`

var receiptTmpl = template.Must(template.New("receipt").Parse(receiptTemplate))

// BuildReceiptData flattens a sale into printable lines, falling back to the
// standard label for lines whose product no longer exists.
func BuildReceiptData(sale models.Sale, clientName string, cashReceived *float64, loc *time.Location) ReceiptData {
	lines := make([]ReceiptLine, 0, len(sale.Items))
	for _, item := range sale.Items {
		name := item.Product.Name
		if name == "" {
			name = dtos.MissingProductLabel
		}
		lines = append(lines, ReceiptLine{
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	data := ReceiptData{
		SaleID:       sale.ID,
		IssuedAt:     sale.CreatedAt.In(loc).Format("02/01/2006 15:04"),
		ClientName:   clientName,
		Lines:        lines,
		Total:        sale.TotalAmount,
		PaymentLabel: sale.PaymentMethod.Label(),
	}

	if sale.PaymentMethod == models.PaymentCash && cashReceived != nil && *cashReceived >= sale.TotalAmount {
		data.ShowChange = true
		data.CashReceived = *cashReceived
		data.Change = *cashReceived - sale.TotalAmount
	}

	return data
}

func RenderReceipt(data ReceiptData) (string, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
