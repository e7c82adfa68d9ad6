package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/proforma-dev/proforma/internal/model"
	"github.com/proforma-dev/proforma/internal/statement"
)

const (
	labelWidth  = 31
	amountWidth = 14
	indent      = "  "
)

// Renderer formats statements as aligned terminal tables. Cells are
// padded before styling so ANSI codes never skew column widths.
type Renderer struct {
	styles Styles
}

// NewRenderer creates a Renderer with the given styles.
func NewRenderer(styles Styles) *Renderer {
	return &Renderer{styles: styles}
}

// FormatAmount renders a decimal with thousands separators and two
// decimal places.
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// FormatSigned is FormatAmount with an explicit plus on positives,
// used for delta columns.
func FormatSigned(d decimal.Decimal) string {
	if d.Sign() > 0 {
		return "+" + FormatAmount(d)
	}
	return FormatAmount(d)
}

// IncomeStatement renders one income statement.
func (r *Renderer) IncomeStatement(is model.IncomeStatement) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("INCOME STATEMENT") + "\n")
	for _, line := range model.IncomeLines() {
		v, _ := is.Value(line.Key)
		b.WriteString(r.row(line.Label, v, line.Total, false) + "\n")
	}
	return b.String()
}

// BalanceSheet renders one balance sheet, with blank lines between the
// asset, liability, and equity sections and detail rows drawn as a
// breakdown tree.
func (r *Renderer) BalanceSheet(bs model.BalanceSheet) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("BALANCE SHEET") + "\n")

	lines := model.BalanceLines()
	prev := model.SectionAssets
	for i, line := range lines {
		if line.Section != prev {
			b.WriteString("\n")
			prev = line.Section
		}

		v, _ := bs.Value(line.Key)
		label := line.Label
		if line.Detail {
			// The allowance is a contra asset; show it negative under
			// the net loans line it reduces.
			if line.Key == model.LineAllowance {
				v = v.Neg()
			}
			prefix := "|- "
			if i+1 >= len(lines) || !lines[i+1].Detail {
				prefix = "`- "
			}
			label = indent + prefix + label
			b.WriteString(r.detailRow(label, v) + "\n")
			continue
		}
		b.WriteString(r.row(label, v, line.Total, false) + "\n")
	}
	return b.String()
}

// Evaluation renders both statements plus the identity outcome.
func (r *Renderer) Evaluation(ev statement.Evaluation) string {
	var b strings.Builder
	b.WriteString(r.IncomeStatement(ev.Income))
	b.WriteString("\n")
	b.WriteString(r.BalanceSheet(ev.Sheet))
	b.WriteString("\n")
	b.WriteString(r.identityLine(ev) + "\n")
	return b.String()
}

// Comparison renders before and after side by side with a delta
// column. Changed rows are emphasized and threshold-flagged rows carry
// a trailing marker.
func (r *Renderer) Comparison(cmp statement.Comparison) string {
	var b strings.Builder

	header := indent + pad("", labelWidth) +
		padLeft("before", amountWidth) + "  " +
		padLeft("after", amountWidth) + "  " +
		padLeft("delta", amountWidth)
	b.WriteString(r.styles.Header.Render(header) + "\n")

	b.WriteString(r.styles.Title.Render("INCOME STATEMENT") + "\n")
	r.deltaRows(&b, cmp.Diff.Income)
	b.WriteString("\n")
	b.WriteString(r.styles.Title.Render("BALANCE SHEET") + "\n")
	r.deltaRows(&b, cmp.Diff.Balance)

	b.WriteString("\n")
	b.WriteString(r.identityLine(cmp.Before) + "\n")
	b.WriteString(r.identityLine(cmp.After) + "\n")
	return b.String()
}

// Sweep renders one row per step of a driver sweep.
func (r *Renderer) Sweep(key model.DriverKey, steps []statement.Step) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("SWEEP "+string(key)) + "\n")

	cols := []string{string(key), "ebt", "tax", "net_income", "net_loans", "total_assets", "total_liab_equity"}
	var header strings.Builder
	header.WriteString(indent)
	for _, c := range cols {
		header.WriteString(padLeft(c, amountWidth+4))
	}
	b.WriteString(r.styles.Header.Render(header.String()) + "\n")

	for _, s := range steps {
		vals := []decimal.Decimal{
			s.Value,
			s.Result.Income.EBT,
			s.Result.Income.Tax,
			s.Result.Income.NetIncome,
			s.Result.Sheet.NetLoans,
			s.Result.Sheet.TotalAssets,
			s.Result.Sheet.TotalLiabEquity,
		}
		b.WriteString(indent)
		for _, v := range vals {
			cell := padLeft(FormatAmount(v), amountWidth+4)
			if v.IsNegative() {
				cell = r.styles.Negative.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) row(label string, v decimal.Decimal, total, changed bool) string {
	labelStyle := r.styles.Label
	amountStyle := r.styles.Label
	if total {
		labelStyle = r.styles.Total
		amountStyle = r.styles.Total
	}
	if changed {
		labelStyle = r.styles.Changed
	}
	if v.IsNegative() {
		amountStyle = r.styles.Negative
	}
	return indent + labelStyle.Render(pad(label, labelWidth)) +
		amountStyle.Render(padLeft(FormatAmount(v), amountWidth))
}

func (r *Renderer) detailRow(label string, v decimal.Decimal) string {
	amountStyle := r.styles.Muted
	if v.IsNegative() {
		amountStyle = r.styles.Negative
	}
	return indent + r.styles.Muted.Render(pad(label, labelWidth)) +
		amountStyle.Render(padLeft(FormatAmount(v), amountWidth))
}

func (r *Renderer) deltaRows(b *strings.Builder, rows []statement.LineDelta) {
	for _, d := range rows {
		labelStyle := r.styles.Label
		deltaCell := pad("", amountWidth)
		if d.Changed {
			labelStyle = r.styles.Changed
			deltaCell = r.styles.Changed.Render(padLeft(FormatSigned(d.Delta), amountWidth))
		}

		line := indent + labelStyle.Render(pad(d.Label, labelWidth)) +
			padLeft(FormatAmount(d.Before), amountWidth) + "  " +
			padLeft(FormatAmount(d.After), amountWidth) + "  " +
			deltaCell
		if d.Flagged {
			line += " *"
		}
		b.WriteString(line + "\n")
	}
}

func (r *Renderer) identityLine(ev statement.Evaluation) string {
	if ev.Balanced {
		return r.styles.Muted.Render(fmt.Sprintf("Balanced: assets %s = liabilities + equity %s",
			FormatAmount(ev.Sheet.TotalAssets), FormatAmount(ev.Sheet.TotalLiabEquity)))
	}
	return r.styles.Negative.Render(fmt.Sprintf("OUT OF BALANCE: assets %s vs liabilities + equity %s (difference %s)",
		FormatAmount(ev.Sheet.TotalAssets), FormatAmount(ev.Sheet.TotalLiabEquity), FormatAmount(ev.Imbalance)))
}

func pad(s string, w int) string {
	return fmt.Sprintf("%-*s", w, s)
}

func padLeft(s string, w int) string {
	return fmt.Sprintf("%*s", w, s)
}
