// Package auditreports mounts internal audit reports.
package auditreports

import (
	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Input is the report form. Approval goes through the status badge.
type Input struct {
	Title     string `form:"title" validate:"notblank,max=120" label:"Title"`
	Auditor   string `form:"auditor" validate:"notblank,max=80" label:"Auditor"`
	AuditDate string `form:"auditDate" validate:"notblank,isodate" label:"Audit date"`
	Findings  string `form:"findings" validate:"max=10000" label:"Findings"`
}

// Definition describes /audit-reports.
func Definition(c *backend.Client) crud.Definition[models.AuditReport, Input] {
	title := func(a models.AuditReport) string { return a.Title }
	auditor := func(a models.AuditReport) string { return a.Auditor }
	date := func(a models.AuditReport) string { return a.AuditDate }

	return crud.Definition[models.AuditReport, Input]{
		Key:      "audit-reports",
		Singular: "Audit report",
		Plural:   "Audit reports",
		Resource: backend.NewResource[models.AuditReport](c, "audit-reports", backend.StatusPatchQuery),
		Filters: []crud.Filter{
			{Key: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.AuditReportStatus},
			{Key: "auditor", Label: "Auditor", Kind: crud.KindText},
			{Key: "auditDate", Label: "Audit date", Kind: crud.KindDate},
		},
		Columns: []crud.Column[models.AuditReport]{
			{Label: "Title", Kind: crud.KindText, Value: title, Link: true},
			{Label: "Auditor", Kind: crud.KindText, Value: auditor},
			{Label: "Audit date", Kind: crud.KindDate, Value: date},
		},
		Fields: []crud.Field[models.AuditReport]{
			{Label: "Title", Kind: crud.KindText, Value: title},
			{Label: "Auditor", Kind: crud.KindText, Value: auditor},
			{Label: "Audit date", Kind: crud.KindDate, Value: date},
			{Label: "Findings", Kind: crud.KindTextArea, Value: func(a models.AuditReport) string { return a.Findings }},
		},
		Form: []crud.FormField{
			{Name: "title", Label: "Title", Kind: crud.KindText, Required: true},
			{Name: "auditor", Label: "Auditor", Kind: crud.KindText, Required: true},
			{Name: "auditDate", Label: "Audit date", Kind: crud.KindDate, Required: true},
			{Name: "findings", Label: "Findings", Kind: crud.KindTextArea},
		},
		StatusEnum: status.AuditReportStatus,
		StatusOf:   func(a models.AuditReport) string { return a.Status },
		ID:         func(a models.AuditReport) int64 { return a.ID },
		Title:      title,
		ToInput: func(a models.AuditReport) Input {
			return Input{Title: a.Title, Auditor: a.Auditor, AuditDate: a.AuditDate, Findings: a.Findings}
		},
		Build: func(in Input, a models.AuditReport) (models.AuditReport, error) {
			if a.ID == 0 {
				a.Status = "DRAFT"
			}
			a.Title = crud.Trim(in.Title)
			a.Auditor = crud.Trim(in.Auditor)
			a.AuditDate = crud.Trim(in.AuditDate)
			a.Findings = crud.Trim(in.Findings)
			return a, nil
		},
		Update:      crud.UpdatePatch,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

// Routes mounts the audit report pages.
func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
