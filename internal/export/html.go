package export

import (
	"html/template"
	"io"
	"time"

	"github.com/bartek5186/bb2feed/internal/marketplaces"
	"github.com/bartek5186/bb2feed/internal/pipeline"
)

// PreviewRows – ile wierszy pokazuje podgląd HTML.
const PreviewRows = 50

var pageTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"money": marketplaces.Money,
	"date":  func(t time.Time) string { return t.Format("2006-01-02 15:04:05") },
}).Parse(`<!DOCTYPE html>
<html lang="{{.Report.Language}}">
<head>
<meta charset="UTF-8">
<title>{{.Report.Marketplace}} feed</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; background: #f8f9fa; }
.stats { display: flex; gap: 20px; flex-wrap: wrap; margin-bottom: 20px; }
.stat { background: #fff; padding: 15px; border-radius: 8px; min-width: 140px; text-align: center; }
.num { font-size: 24px; font-weight: bold; }
table { border-collapse: collapse; width: 100%; background: #fff; margin-top: 20px; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background: #eee; }
img { max-width: 60px; max-height: 60px; }
</style>
</head>
<body>
<h1>{{.Report.Marketplace}} product feed</h1>
<p>Market: <strong>{{.Report.Country}}</strong> | Language: {{.Report.Language}} | Currency: {{.Report.Currency}} | Updated: {{date .Report.FinishedAt}} | Run: <code>{{.Report.RunID}}</code> | Seed: {{.Report.Seed}}</p>

<div class="stats">
  <div class="stat"><div class="num">{{.Report.Stats.Exported}}</div>Products</div>
  <div class="stat"><div class="num">{{.Report.Stats.TotalProcessed}}</div>Processed</div>
  <div class="stat"><div class="num">{{printf "%.1f" .Report.Stats.SuccessRate}}%</div>Success rate</div>
  <div class="stat"><div class="num">{{printf "%.0f" .Margin}}%</div>Margin</div>
  <div class="stat"><div class="num">{{money .Report.Stats.PriceMin}}</div>Min price</div>
  <div class="stat"><div class="num">{{money .Report.Stats.PriceMax}}</div>Max price</div>
</div>

<h2>Rejections</h2>
<table>
<tr><th>Reason</th><th>Count</th></tr>
{{range .Rejections}}<tr><td>{{.Reason}}</td><td>{{.Count}}</td></tr>
{{end}}<tr><td>duplicates_dropped</td><td>{{.Report.Stats.DuplicatesDropped}}</td></tr>
<tr><td>sampled_out</td><td>{{.Report.Stats.SampledOut}}</td></tr>
</table>

<h2>Preview ({{len .Rows}} of {{.Report.Stats.Exported}})</h2>
{{if .Rows}}<table>
<tr><th>Image</th><th>SKU</th><th>Title</th><th>EAN</th><th>Category</th><th>Price</th><th>Quantity</th></tr>
{{range .Rows}}<tr>
<td>{{if index .Images 0}}<img src="{{index .Images 0}}" alt="">{{else}}-{{end}}</td>
<td>{{.SKU}}</td><td>{{.Title}}</td><td>{{.EAN}}</td><td>{{.Category}}</td>
<td>{{money .Price}} {{.Currency}}</td><td>{{.Quantity}}</td>
</tr>
{{end}}</table>{{else}}<p>No products available.</p>{{end}}
</body>
</html>
`))

type page struct {
	Report     Report
	Margin     float64
	Rejections []ReasonCount
	Rows       []pipeline.OutputRow
}

// WriteHTML zapisuje stronę podglądu: statystyki, odrzucenia, pierwsze PreviewRows wierszy.
func WriteHTML(w io.Writer, r Report, rows []pipeline.OutputRow) error {
	if len(rows) > PreviewRows {
		rows = rows[:PreviewRows]
	}
	return pageTmpl.Execute(w, page{
		Report:     r,
		Margin:     r.Rules.MarginRate * 100,
		Rejections: r.RejectionTable(),
		Rows:       rows,
	})
}
