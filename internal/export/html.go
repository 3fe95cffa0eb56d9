package export

import (
	"bytes"
	"fmt"
	"html/template"
)

var receiptTemplate = template.Must(template.New("receipt").Parse(`<div style="font-family: sans-serif; padding: 20px; max-width: 100%; box-sizing: border-box;">
  <div style="text-align: center; margin-bottom: 30px;">
    <h1 style="color: #4c1d95; font-size: 24px; margin-bottom: 10px;">{{.Brand}}</h1>
    <p style="color: #666; font-size: 14px;">{{.Tagline}}</p>
  </div>
  <div style="margin-bottom: 30px;">
    <h2 style="color: #4c1d95; font-size: 20px; margin-bottom: 15px;">Receipt Details</h2>
    <p><strong>Receipt ID:</strong> {{.Doc.ReceiptID}}</p>
    <p><strong>Date:</strong> {{.Doc.Date}}</p>
  </div>
  <div style="margin-bottom: 30px;">
    <h2 style="color: #4c1d95; font-size: 20px; margin-bottom: 15px;">Customer Information</h2>
    <p><strong>Name:</strong> {{.Doc.CustomerName}}</p>
    <p><strong>Email:</strong> {{.Doc.CustomerEmail}}</p>
  </div>
  <div style="margin-bottom: 30px;">
    <h2 style="color: #4c1d95; font-size: 20px; margin-bottom: 15px;">Transaction Details</h2>
    <table style="width: 100%; border-collapse: collapse;">
      <tr style="background: #f3f4f6;">
        <th style="padding: 10px; border: 1px solid #ccc;">Description</th>
        <th style="padding: 10px; border: 1px solid #ccc; text-align: right;">Amount</th>
      </tr>
      <tr>
        <td style="padding: 10px; border: 1px solid #ccc;">{{.Doc.Purpose}}</td>
        <td style="padding: 10px; border: 1px solid #ccc; text-align: right;">{{.Doc.Amount}}</td>
      </tr>
      <tr style="background: #f3f4f6; font-weight: bold;">
        <td style="padding: 10px; border: 1px solid #ccc;">Total</td>
        <td style="padding: 10px; border: 1px solid #ccc; text-align: right;">{{.Doc.Amount}}</td>
      </tr>
    </table>
  </div>
  <div style="margin-bottom: 30px;">
    <h2 style="color: #4c1d95; font-size: 20px; margin-bottom: 15px;">Blockchain Info</h2>
    <p><strong>Transaction Hash:</strong></p>
    <div style="max-width: 100%; overflow-wrap: break-word; word-break: break-all; background: #f9fafb; padding: 10px; border-radius: 4px; margin: 8px 0;">
      <p style="font-family: monospace; margin: 0;">{{.Doc.TxHash}}</p>
    </div>
    <p style="margin-top: 8px;"><a href="{{.Doc.ExplorerURL}}" style="color: #4c1d95; text-decoration: none;">View on block explorer</a></p>
  </div>
  <div style="margin-top: 40px; padding-top: 20px; border-top: 1px solid #ccc; font-size: 12px; color: #666;">
    <p style="text-align: center;">{{.Notice}}</p>
    <p style="text-align: center;">Generated on {{.Doc.GeneratedDate}}</p>
  </div>
</div>
`))

// RenderHTML fills the printable receipt template. Record fields are escaped.
func (r *Renderer) RenderHTML(doc Document) ([]byte, error) {
	var buf bytes.Buffer

	err := receiptTemplate.Execute(&buf, struct {
		Brand   string
		Tagline string
		Notice  string
		Doc     Document
	}{
		Brand:   brandName,
		Tagline: brandTagline,
		Notice:  footerNotice,
		Doc:     doc,
	})
	if err != nil {
		return nil, fmt.Errorf("execute receipt template: %w", err)
	}

	return buf.Bytes(), nil
}
