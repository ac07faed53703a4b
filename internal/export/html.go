package export

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/costwise/costwise/internal/session"
)

// The printable documents share one stylesheet, kept close to a plain
// printed estimate: bordered tables, a ruled header, bold totals.
const docStyle = `
    body { font-family: Arial, sans-serif; margin: 40px; font-size: 12px; }
    .header { border-bottom: 2px solid #333; padding-bottom: 20px; margin-bottom: 30px; }
    .section { margin-bottom: 20px; }
    .summary-row { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #eee; }
    .total-row { display: flex; justify-content: space-between; padding: 10px 0; font-weight: bold; border-top: 2px solid #333; }
    table { width: 100%; border-collapse: collapse; margin: 20px 0; }
    th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
    th { background-color: #f2f2f2; }
    .sub-item { padding-left: 15px; font-size: 11px; }
`

var summaryTmpl = template.Must(template.New("summary").Parse(`<html>
  <head>
    <title>{{.Title}}</title>
    <style>` + docStyle + `</style>
  </head>
  <body>
    <div class="header">
      <h1>{{.Title}}</h1>
      <p><strong>Date:</strong> {{.Date}}</p>
      <p><strong>Units:</strong> {{.Units}}</p>
      <p><strong>Currency:</strong> {{.Currency}}</p>
    </div>

    <div class="section">
      <h3>Materials</h3>
      <table>
        <thead>
          <tr>
            <th>Material</th><th>Type</th><th>Base Units</th><th>Waste</th>
            <th>Total Units</th><th>Cost per Unit</th><th>Total Cost</th><th>Subcontractor</th>
          </tr>
        </thead>
        <tbody>
          {{range .Materials}}
          <tr>
            <td>{{.Name}}{{if .Description}}<br/><small>{{.Description}}</small>{{end}}{{if .SubmittalLink}}<br/><small><a href="{{.SubmittalLink}}">Submittal</a></small>{{end}}{{if .InvoiceLink}}<br/><small><a href="{{.InvoiceLink}}">Invoice</a></small>{{end}}</td>
            <td>{{.Type}}</td>
            <td>{{.BaseUnits}}</td>
            <td>{{.Waste}}</td>
            <td>{{.TotalUnits}}</td>
            <td>{{.CostPerUnit}}</td>
            <td>{{.TotalCost}}</td>
            <td>{{.Subcontractor}}</td>
          </tr>
          {{range .Details}}
          <tr><td class="sub-item">{{.Label}}</td><td colspan="5"></td><td>{{.Cost}}</td><td></td></tr>
          {{end}}
          {{end}}
        </tbody>
      </table>
    </div>

    <div class="section">
      <h3>Labor Cost Breakdown</h3>
      <table>
        <thead>
          <tr>
            <th>Trade</th><th>Hourly Rate</th><th>Hours</th><th>Laborers</th>
            <th>Total Cost</th><th>Subcontractor</th>
          </tr>
        </thead>
        <tbody>
          {{range .Labor}}
          <tr>
            <td>{{.Name}}</td><td>{{.Rate}}</td><td>{{.Hours}}</td>
            <td>{{.Workers}}</td><td>{{.TotalCost}}</td><td>{{.Subcontractor}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>

    <div class="section">
      <h3>Equipment</h3>
      <table>
        <thead>
          <tr><th>Equipment</th><th>Type</th><th>Total Cost</th><th>Subcontractor</th></tr>
        </thead>
        <tbody>
          {{range .Equipment}}
          <tr>
            <td>{{.Name}}{{if .Description}}<br/><small>{{.Description}}</small>{{end}}{{if .SubmittalLink}}<br/><small><a href="{{.SubmittalLink}}">Submittal</a></small>{{end}}{{if .InvoiceLink}}<br/><small><a href="{{.InvoiceLink}}">Invoice</a></small>{{end}}</td>
            <td>{{.Type}}</td><td>{{.TotalCost}}</td><td>{{.Subcontractor}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>

    <div class="section">
      <h3>Cost Forecast</h3>
      <table>
        <thead>
          <tr><th>Cost</th><th>Category</th><th>Amount</th><th>Assigned Tasks</th></tr>
        </thead>
        <tbody>
          {{range .Forecast}}
          <tr><td>{{.Name}}</td><td>{{.Category}}</td><td>{{.Amount}}</td><td>{{.Tasks}}</td></tr>
          {{end}}
        </tbody>
      </table>
      {{range .ForecastTotals}}
      <div class="summary-row"><span>{{.Label}}</span><span>{{.Value}}</span></div>
      {{end}}
    </div>

    {{if .Rollups}}
    <div class="section">
      <h3>Subcontractor Rollup</h3>
      <table>
        <thead>
          <tr>
            <th>Subcontractor</th><th>Company</th><th>Material</th>
            <th>Labor</th><th>Equipment</th><th>Total</th>
          </tr>
        </thead>
        <tbody>
          {{range .Rollups}}
          <tr>
            <td>{{.Name}}</td><td>{{.Company}}</td><td>{{.Material}}</td>
            <td>{{.Labor}}</td><td>{{.Equipment}}</td><td>{{.Total}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>
    {{end}}

    <div class="section">
      {{range .Totals}}
      <div class="summary-row"><span>{{.Label}}</span><span>{{.Value}}</span></div>
      {{end}}
    </div>
  </body>
</html>
`))

var scheduleTmpl = template.Must(template.New("schedule").Parse(`<html>
  <head>
    <title>{{.Title}}</title>
    <style>` + docStyle + `</style>
  </head>
  <body>
    <div class="header">
      <h1>{{.Title}}</h1>
      <p><strong>Date:</strong> {{.Date}}</p>
    </div>

    <div class="section">
      <table>
        <thead>
          <tr>
            <th>Task</th><th>Start Date</th><th>End Date</th>
            <th>Assigned Materials</th><th>Assigned Equipment</th><th>Subcontractor</th>
          </tr>
        </thead>
        <tbody>
          {{range .Tasks}}
          <tr>
            <td>{{.TaskName}}</td><td>{{.Start}}</td><td>{{.End}}</td>
            <td>{{.Materials}}</td><td>{{.Equipment}}</td><td>{{.Subcontractor}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>
  </body>
</html>
`))

// CostSummaryHTML renders the printable cost-summary document.
func CostSummaryHTML(s *session.Session, now time.Time) (string, error) {
	var buf strings.Builder
	if err := summaryTmpl.Execute(&buf, BuildSummaryData(s, now)); err != nil {
		return "", fmt.Errorf("render cost summary: %w", err)
	}
	return buf.String(), nil
}

// ScheduleHTML renders the printable schedule document.
func ScheduleHTML(s *session.Session, now time.Time) (string, error) {
	var buf strings.Builder
	if err := scheduleTmpl.Execute(&buf, BuildScheduleData(s, now)); err != nil {
		return "", fmt.Errorf("render schedule: %w", err)
	}
	return buf.String(), nil
}
