package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"aadhaarqr/internal/domain"
)

var (
	okStyle  = color.New(color.Bold, color.FgGreen)
	errStyle = color.New(color.Bold, color.FgRed)
)

// writeTable lays res out as FIELD | VALUE rows.
func writeTable(w io.Writer, res domain.Result) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Value"})

	if res.Status == domain.StatusSuccess {
		t.AppendRow(table.Row{"status", okStyle.Sprint(res.Status)})
		t.AppendRow(table.Row{"qr_type", res.QRType})
		t.AppendSeparator()
		if res.Data != nil {
			for _, k := range res.Data.Keys() {
				v, _ := res.Data.Get(k)
				t.AppendRow(table.Row{k, fmt.Sprint(v)})
			}
		}
		if v := res.Verification; v != nil {
			t.AppendSeparator()
			if v.Email != nil {
				t.AppendRow(table.Row{"verify email", outcome(*v.Email)})
			}
			if v.Mobile != nil {
				t.AppendRow(table.Row{"verify mobile", outcome(*v.Mobile)})
			}
		}
	} else {
		t.AppendRow(table.Row{"status", errStyle.Sprint(res.Status)})
		t.AppendRow(table.Row{"error", res.Error})
		if !res.IsUsage() {
			t.AppendRow(table.Row{"qr_data_length", res.PayloadLength})
			t.AppendRow(table.Row{"qr_data_preview", res.Preview})
		}
	}

	t.Render()
	return nil
}

func outcome(o domain.VerifyOutcome) string {
	switch o {
	case domain.VerifyMatch:
		return okStyle.Sprint(o)
	case domain.VerifyMismatch:
		return errStyle.Sprint(o)
	default:
		return string(o)
	}
}
