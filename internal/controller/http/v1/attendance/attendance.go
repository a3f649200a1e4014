package attendance

import (
	"net/http"
	"reflect"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/attendance"
)

type Controller struct {
	attendance Attendance
}

func NewController(attendance Attendance) *Controller {
	return &Controller{attendance}
}

func (ac Controller) GetAttendanceList(c *web.Context) error {
	var filter attendance.Filter

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
	if verified, ok := c.GetQueryFunc(reflect.Bool, "verified").(*bool); ok {
		filter.Verified = verified
	}
	if date, ok := c.GetQueryFunc(reflect.String, "date").(*string); ok {
		filter.Date = date
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := ac.attendance.GetList(c.Ctx, filter)
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

func (ac Controller) ClockIn(c *web.Context) error {
	var request attendance.ClockInRequest
	if err := c.BindFunc(&request, "ScheduleID", "Latitude", "Longitude"); err != nil {
		return c.RespondError(err)
	}

	response, err := ac.attendance.ClockIn(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (ac Controller) ClockOut(c *web.Context) error {
	var request attendance.ClockOutRequest
	if err := c.BindFunc(&request, "ScheduleID", "Latitude", "Longitude"); err != nil {
		return c.RespondError(err)
	}

	response, err := ac.attendance.ClockOut(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (ac Controller) VerifyAttendance(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request attendance.VerifyRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := ac.attendance.Verify(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
