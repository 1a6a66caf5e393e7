// Package salaries mounts employee pay periods.
package salaries

import (
	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Input is the salary form. Status moves only through the badge, which the
// backend takes as a raw PUT body.
type Input struct {
	EmployeeID string `form:"employeeId" validate:"omitempty,integer,minnum=1" label:"Employee id"`
	Period     string `form:"period" validate:"notblank,yearmonth" label:"Period"`
	Amount     string `form:"amount" validate:"notblank,number,minnum=0" label:"Amount"`
	PayDate    string `form:"payDate" validate:"omitempty,isodate" label:"Pay date"`
}

// Definition describes /salaries.
func Definition(c *backend.Client) crud.Definition[models.Salary, Input] {
	employee := func(s models.Salary) string { return s.EmployeeName }
	period := func(s models.Salary) string { return s.Period }
	amount := func(s models.Salary) string { return crud.Dec(s.Amount) }
	payDate := func(s models.Salary) string { return s.PayDate }

	return crud.Definition[models.Salary, Input]{
		Key:      "salaries",
		Singular: "Salary",
		Plural:   "Salaries",
		Resource: backend.NewResource[models.Salary](c, "salaries", backend.StatusPutBody),
		Filters: []crud.Filter{
			{Key: "status", Label: "Status", Kind: crud.KindStatus, Enum: status.SalaryStatus},
			{Key: "period", Label: "Period", Kind: crud.KindMonth},
			{Key: "employeeName", Label: "Employee", Kind: crud.KindText},
		},
		Columns: []crud.Column[models.Salary]{
			{Label: "Employee", Kind: crud.KindText, Value: employee, Link: true},
			{Label: "Period", Kind: crud.KindMonth, Value: period},
			{Label: "Amount", Kind: crud.KindMoney, Value: amount},
			{Label: "Pay date", Kind: crud.KindDate, Value: payDate},
		},
		Fields: []crud.Field[models.Salary]{
			{Label: "Employee", Kind: crud.KindText, Value: employee},
			{Label: "Period", Kind: crud.KindMonth, Value: period},
			{Label: "Amount", Kind: crud.KindMoney, Value: amount},
			{Label: "Pay date", Kind: crud.KindDate, Value: payDate},
		},
		Form: []crud.FormField{
			{Name: "employeeId", Label: "Employee id", Kind: crud.KindInteger, CreateOnly: true},
			{Name: "period", Label: "Period", Kind: crud.KindMonth, Required: true},
			{Name: "amount", Label: "Amount", Kind: crud.KindMoney, Required: true},
			{Name: "payDate", Label: "Pay date", Kind: crud.KindDate},
		},
		StatusEnum: status.SalaryStatus,
		StatusOf:   func(s models.Salary) string { return s.Status },
		ID:         func(s models.Salary) int64 { return s.ID },
		ToInput: func(s models.Salary) Input {
			return Input{
				EmployeeID: crud.RefInput(s.EmployeeID),
				Period:     s.Period,
				Amount:     crud.DecInput(s.Amount, s.ID),
				PayDate:    s.PayDate,
			}
		},
		Build: func(in Input, s models.Salary) (models.Salary, error) {
			amt, err := crud.ParseDecimal(in.Amount)
			if err != nil {
				return s, err
			}
			if s.ID == 0 {
				eid, err := crud.ParseInt(in.EmployeeID)
				if err != nil {
					return s, err
				}
				s.EmployeeID = eid
				s.Status = "PENDING"
			}
			s.Period = crud.Trim(in.Period)
			s.Amount = amt
			s.PayDate = crud.Trim(in.PayDate)
			return s, nil
		},
		Update:      crud.UpdatePatch,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

// Routes mounts the salary pages.
func Routes(c *backend.Client, deps crud.Deps, sm *auth.SessionManager) chi.Router {
	return crud.MustNew(Definition(c), deps).Routes(sm)
}
