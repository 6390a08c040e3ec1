package document

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"estimate_engine/internal/domain/entities"
	"estimate_engine/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const dateLayout = "Jan 2, 2006"

// PDFRenderer lays an estimate out as a one-column PDF with an item table and
// a totals block.
type PDFRenderer struct {
	companyName string
	currency    string
	printer     *message.Printer
}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(companyName, currencySymbol string) *PDFRenderer {
	return &PDFRenderer{
		companyName: companyName,
		currency:    currencySymbol,
		printer:     message.NewPrinter(language.English),
	}
}

func (r *PDFRenderer) RenderEstimate(ctx context.Context, e entities.Estimate) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()
	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(8, r.companyName, props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Left}),
		text.NewCol(4, "Estimate", props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Right}),
	)

	meta := col.New(6).Add(
		text.New("Date: "+e.CreatedAt.Format(dateLayout), props.Text{Top: 0}),
		text.New("Status: "+string(e.Status), props.Text{Top: 4}),
	)
	if e.ValidUntil != nil {
		meta.Add(text.New("Valid until: "+e.ValidUntil.Format(dateLayout), props.Text{Top: 8}))
	}
	m.AddRow(16, meta, col.New(6))

	m.AddRow(28,
		col.New(6).Add(
			text.New("Prepared for", props.Text{Style: fontstyle.Bold}),
			text.New(e.ClientName, props.Text{Top: 5}),
			text.New(e.AddressLine1, props.Text{Top: 9}),
			text.New(e.AddressLine2, props.Text{Top: 13}),
			text.New(cityLine(e), props.Text{Top: 17}),
			text.New(e.ClientEmail, props.Text{Top: 21}),
		),
		col.New(6).Add(
			text.New("Project", props.Text{Style: fontstyle.Bold}),
			text.New(e.ProjectType, props.Text{Top: 5}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for _, it := range e.Items {
		m.AddRow(8,
			text.NewCol(6, it.Description, props.Text{Size: 9}),
			text.NewCol(2, strconv.FormatFloat(it.Quantity, 'f', -1, 64), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, r.money(it.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, r.money(it.TotalPrice), props.Text{Size: 9, Align: align.Right}),
		)
	}

	r.totalRow(m, "Subtotal", r.money(e.Subtotal), false)
	r.totalRow(m, fmt.Sprintf("Tax (%s%%)", strconv.FormatFloat(e.TaxRate, 'f', -1, 64)), r.money(e.TaxAmount), false)
	if e.DiscountAmount > 0 {
		r.totalRow(m, "Discount", "-"+r.money(e.DiscountAmount), false)
	}
	r.totalRow(m, "Total", r.money(e.TotalAmount), true)
	if e.AmountPaid > 0 {
		r.totalRow(m, "Paid", r.money(e.AmountPaid), false)
		r.totalRow(m, "Balance due", r.money(e.BalanceDue), true)
	}

	if e.Terms != "" {
		m.AddRow(6, text.NewCol(12, "Terms", props.Text{Style: fontstyle.Bold, Size: 9, Top: 4}))
		m.AddRow(20, text.NewCol(12, e.Terms, props.Text{Size: 8, Top: 2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("document: generate estimate %s: %w", e.ID, err)
	}
	return doc.GetBytes(), nil
}

func (r *PDFRenderer) totalRow(m core.Maroto, label, value string, bold bool) {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	m.AddRow(7,
		col.New(8),
		text.NewCol(2, label, props.Text{Size: 9, Style: style}),
		text.NewCol(2, value, props.Text{Size: 9, Style: style, Align: align.Right}),
	)
}

func (r *PDFRenderer) money(v float64) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	return sign + r.currency + r.printer.Sprint(number.Decimal(v, number.Scale(2)))
}

func cityLine(e entities.Estimate) string {
	place := e.City
	if e.City != "" && e.State != "" {
		place += ", "
	}
	return strings.TrimSpace(place + e.State + " " + e.PostalCode)
}
