package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pinnacle/erp/domain"
)

var brazil = message.NewPrinter(language.BrazilianPortuguese)

// formatPrice renders a price with two decimals in Brazilian notation.
func formatPrice(d decimal.Decimal) string {
	return brazil.Sprintf("%.2f", d.Round(domain.PriceScale).InexactFloat64())
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func renderProducts(w io.Writer, products []domain.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "Nenhum produto cadastrado.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCÓDIGO\tCOR\tDESCRIÇÃO\tTAM\tMODELAGEM\tGÊNERO\tGRUPO\tSUBGRUPO\tCUSTO\tVENDA\tESTOQUE")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			p.ID, p.Code, p.Color, p.Description, p.Size, p.Fit, p.Gender, p.Group, p.Subgroup,
			formatPrice(p.CostPrice), formatPrice(p.SalePrice), p.Stock)
	}
	return tw.Flush()
}

func renderClients(w io.Writer, clients []domain.Client) error {
	if len(clients) == 0 {
		_, err := fmt.Fprintln(w, "Nenhum cliente cadastrado.")
		return err
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNOME\tCPF\tSEXO\tNASCIMENTO\tTELEFONE\tEMAIL")
	for _, c := range clients {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.CPF, c.Sex, c.BirthDate.Display(), c.Phone, c.Email)
	}
	return tw.Flush()
}
