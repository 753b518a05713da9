package service

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/mirayfashion/admin-backend/pkg/extract"
	"github.com/mirayfashion/admin-backend/pkg/stats"
)

// labelTemplate is the fixed layout printed on product shelf labels by the
// barcode utility page.
var labelTemplate = template.Must(template.New("label").Parse(
	"{{.Name}}\nSKU: {{.SKU}}\nPrice: {{.Price}}\nBarcode: {{.Barcode}}\n"))

type labelFields struct {
	Name    string
	SKU     string
	Price   string
	Barcode string
}

// BarcodeLabel renders the shelf label text for one product record. Fields
// are resolved best-effort; a product with no resolvable SKU still gets a
// printable label with the dash sentinel in place.
func (s *DashboardService) BarcodeLabel(product extract.Record) (string, error) {
	name, ok := extract.Text(product, productNamePaths...)
	if !ok {
		name = stats.Dash
	}
	sku, ok := extract.Text(product, productSKUPaths...)
	if !ok {
		sku = stats.Dash
	}
	barcode, ok := extract.Text(product, "barcode", "ean", "upc")
	if !ok {
		barcode = sku
	}

	price, priceOK := extract.Number(product, pricePaths...)

	var buf bytes.Buffer
	err := labelTemplate.Execute(&buf, labelFields{
		Name:    name,
		SKU:     sku,
		Price:   formatAmount(price, priceOK),
		Barcode: barcode,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render label: %w", err)
	}
	return buf.String(), nil
}
