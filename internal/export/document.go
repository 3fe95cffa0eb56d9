// Package export renders receipt records into their printable forms: the HTML
// preview and the PDF download.
package export

const (
	brandName    = "ReceiptChain"
	brandTagline = "Blockchain Receipt Solutions"
	footerNotice = "This is an electronically generated receipt."
)

// Document is everything printed on a receipt.
type Document struct {
	ReceiptID     string
	Date          string
	CustomerName  string
	CustomerEmail string
	Purpose       string
	Amount        string
	TxHash        string
	ExplorerURL   string
	GeneratedDate string
}

// Filename is the download name of the PDF.
func (d Document) Filename() string {
	return "receipt-" + d.ReceiptID + ".pdf"
}

type RendererOpts struct {
	// DisableCompression leaves PDF page streams readable, which tests rely on.
	DisableCompression bool
}

type Renderer struct {
	compress bool
}

func NewRenderer(o RendererOpts) *Renderer {
	return &Renderer{
		compress: !o.DisableCompression,
	}
}
