package schedule

import (
	"net/http"
	"reflect"
	"time"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/schedule"
)

type Controller struct {
	schedule Schedule
}

func NewController(schedule Schedule) *Controller {
	return &Controller{schedule}
}

func (sc Controller) GetScheduleList(c *web.Context) error {
	var filter schedule.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if userId, ok := c.GetQueryFunc(reflect.Int, "user_id").(*int); ok {
		filter.UserID = userId
	}
	if siteId, ok := c.GetQueryFunc(reflect.Int, "site_id").(*int); ok {
		filter.SiteID = siteId
	}
	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = date
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := sc.schedule.GetList(c.Ctx, filter)
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

func (sc Controller) GetScheduleDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.schedule.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) CreateSchedule(c *web.Context) error {
	var request schedule.CreateRequest
	if err := c.BindFunc(&request, "UserID", "SiteID", "JobID", "StartTime", "EndTime"); err != nil {
		return c.RespondError(err)
	}

	response, err := sc.schedule.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) CancelSchedule(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := sc.schedule.Cancel(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (sc Controller) MarkNoShows(c *web.Context) error {
	count, err := sc.schedule.MarkNoShows(c.Ctx, time.Now())
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"marked": count,
		},
		"status": true,
	}, http.StatusOK)
}
