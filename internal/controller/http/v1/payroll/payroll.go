package payroll

import (
	"net/http"
	"reflect"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/payroll"
)

type Controller struct {
	payroll Payroll
}

func NewController(payroll Payroll) *Controller {
	return &Controller{payroll}
}

func (pc Controller) GetPeriodList(c *web.Context) error {
	var filter payroll.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := pc.payroll.GetPeriodList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) CreatePeriod(c *web.Context) error {
	var request payroll.CreatePeriodRequest
	if err := c.BindFunc(&request, "StartDate", "EndDate"); err != nil {
		return c.RespondError(err)
	}

	response, err := pc.payroll.CreatePeriod(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) GeneratePeriod(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := pc.payroll.Generate(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) ApprovePeriod(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := pc.payroll.Approve(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) GetItemList(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	list, err := pc.payroll.GetItemList(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   len(list),
		},
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) CreatePenalty(c *web.Context) error {
	var request payroll.AdjustmentRequest
	if err := c.BindFunc(&request, "UserID", "Amount", "Reason"); err != nil {
		return c.RespondError(err)
	}

	id, err := pc.payroll.CreatePenalty(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"id": id,
		},
		"status": true,
	}, http.StatusOK)
}

func (pc Controller) CreateBonus(c *web.Context) error {
	var request payroll.AdjustmentRequest
	if err := c.BindFunc(&request, "UserID", "Amount", "Reason"); err != nil {
		return c.RespondError(err)
	}

	id, err := pc.payroll.CreateBonus(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"id": id,
		},
		"status": true,
	}, http.StatusOK)
}
