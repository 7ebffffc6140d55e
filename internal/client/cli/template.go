package cli

const usageText = `
Postrack Client

Usage:
  postrack [OPTIONS] COMMAND

Options:
  --version        Show version information
  --server URL     Server URL (default: http://localhost:8080)
  --db PATH        Path to local database (default: postrack-client.db)

Commands:
  register                     Register a new account
  login                        Login to the server
  logout                       Logout and revoke tokens
  status                       Show session and sync status
  submit <report|cash>         Submit a daily report or a cash count
  list <reports|shops|requests|cash>
                               List replicated data
  totals [--from D] [--to D] [--all-dates]
                               Consolidated totals for a period
  delete <report-id>           Delete a report (tombstone)
  request <machine|shop|rename>
                               File a pending request
  approve <kind> <id>          Approve a pending request (admin)
  reject <kind> <id>           Reject a pending request (admin)
  system <subcommand>          System status controls (admin)
  sync                         Push queued writes and pull the delta
  watch                        Keep syncing until interrupted

Examples:
  postrack login
  postrack submit report
  postrack totals --from 2025-06-01 --to 2025-06-30
  postrack approve machine 1f0c2a4e
  postrack system disable
  postrack --server https://rows.example.com sync
`

const reportsListTemplate = `
=== Daily Reports ===
{{- if eq (len .) 0 }}

No reports in the selected period.
{{- else }}

Found {{len .}} report(s):
{{ range . }}
- {{ .Date }}  {{ .ShopName }}  [{{ .ReportType }}]
   ID:        {{ .ID }}
   Submitter: {{ .Username }}
   Machines:  {{ .MachineTotal }}
   Net cash:  {{ .NetCash }}
   Total:     {{ .GrandTotal }}
{{- if .Notes }}
   Notes:     {{ .Notes }}
{{- end }}
{{ end }}
{{- end }}
`

const shopsListTemplate = `
=== Shops ===
{{- if eq (len .) 0 }}

No shops replicated yet.
{{- else }}

Found {{len .}} shop(s):
{{ range . }}
- {{ .Name }}
   ID:       {{ .ID }}
   Location: {{ .Location }}
{{- if .PartnerName }}
   Partner:  {{ .PartnerName }}
{{- end }}
   Direct:   {{ .IsDirect }}
   TIDs:     {{ len .StandardTIDs }} standard, {{ len .HalaTIDs }} hala
{{ end }}
{{- end }}
`

const cashListTemplate = `
=== Cash Counts ===
{{- if eq (len .) 0 }}

No cash counts submitted.
{{- else }}

Found {{len .}} count(s):
{{ range . }}
- {{ .Date }}  {{ .Username }}
   ID:     {{ .ID }}
   Total:  {{ .TotalAmount }}
{{ end }}
{{- end }}
`

const totalsTemplate = `
=== Consolidated Totals ===

Period:          {{ .Period }}
Reports counted: {{ .Count }}

Machines total:  {{ .Totals.Machines }}
Direct machines: {{ .Totals.DirectMachines }}
Direct cash:     {{ .Totals.DirectCash }}
Partners total:  {{ .Totals.PartnersTotal }}
Grand total:     {{ .Totals.Grand }}

Direct sales:    {{ .Summary.DirectSales }}
Partner sales:   {{ .Summary.PartnerSales }}
{{- if .Summary.ByCategory }}

By category:
{{- range .Summary.ByCategory }}
  {{ .Name }}: {{ .Total }}
{{- end }}
{{- end }}
{{- if .Summary.ByLocation }}

By location:
{{- range .Summary.ByLocation }}
  {{ .Name }}: {{ .Total }}
{{- end }}
{{- end }}
{{- if .Summary.ByPartner }}

By partner:
{{- range .Summary.ByPartner }}
  {{ .Name }}: {{ .Total }}
{{- end }}
{{- end }}
`
