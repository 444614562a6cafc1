package paycalc

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Section string

const (
	SectionEarnings   Section = "Gains"
	SectionDeductions Section = "Retenues salariales"
	SectionEmployer   Section = "Charges patronales"
	SectionTotals     Section = "Totaux"
)

type Line struct {
	Section Section
	Label   string
	Amount  decimal.Decimal
}

func (l Line) Formatted() string {
	return FormatAmount(l.Amount)
}

// Breakdown lists the result as labeled lines for printing. It adds no
// figures of its own.
func Breakdown(r Result) []Line {
	c := r.Contributions
	lines := []Line{
		{SectionEarnings, "Salaire de base", r.BaseSalary},
	}
	for _, b := range r.BonusLines {
		lines = append(lines, Line{SectionEarnings, "Prime: " + b.Name, b.Amount})
	}
	lines = append(lines,
		Line{SectionEarnings, "Total primes", r.Bonuses},
		Line{SectionEarnings, "Salaire brut", r.GrossSalary},
		Line{SectionDeductions, "Assiette de cotisation", c.Assiette},
		Line{SectionDeductions, "Sécurité sociale (CNAS)", c.SSEmployee},
		Line{SectionDeductions, "Retraite (CNR)", c.RetirementEmployee},
		Line{SectionDeductions, "Assurance chômage (CNAC)", c.UnemploymentEmployee},
		Line{SectionDeductions, "Total retenues", r.TotalEmployeeContributions},
		Line{SectionDeductions, "Salaire imposable", r.TaxableSalary},
		Line{SectionDeductions, "IRG", r.IncomeTax},
		Line{SectionEmployer, "Sécurité sociale patronale", c.SSEmployer},
		Line{SectionEmployer, "Retraite patronale", c.RetirementEmployer},
		Line{SectionEmployer, "Total charges patronales", r.TotalEmployerContributions},
		Line{SectionTotals, "Salaire net", r.NetSalary},
		Line{SectionTotals, "Coût total employeur", r.TotalCost},
	)
	return lines
}

// FormatAmount renders an amount in dinars with French grouping.
func FormatAmount(d decimal.Decimal) string {
	p := message.NewPrinter(language.French)
	return p.Sprintf("%v DA", number.Decimal(d.InexactFloat64(), number.Scale(2)))
}

func WriteBreakdown(w io.Writer, title string, lines []Line) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "%s\t\n", title); err != nil {
		return err
	}
	var section Section
	for _, l := range lines {
		if l.Section != section {
			section = l.Section
			if _, err := fmt.Fprintf(tw, "-- %s --\t\n", section); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t\n", l.Label, l.Formatted()); err != nil {
			return err
		}
	}
	return tw.Flush()
}
