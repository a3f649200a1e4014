package job

import (
	"errors"
	"net/http"
	"reflect"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/repository/postgres/job"
)

type Controller struct {
	job Job
}

func NewController(job Job) *Controller {
	return &Controller{job}
}

func (jc Controller) GetJobList(c *web.Context) error {
	var filter job.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}
	if category, ok := c.GetQueryFunc(reflect.String, "category").(*string); ok {
		filter.Category = category
	}
	if active, ok := c.GetQueryFunc(reflect.Bool, "active").(*bool); ok {
		filter.Active = active
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := jc.job.GetList(c.Ctx, filter)
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

func (jc Controller) GetJobDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := jc.job.GetById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (jc Controller) GetJobSettings(c *web.Context) error {
	var userID, jobID *int

	if id, ok := c.GetQueryFunc(reflect.Int, "user_id").(*int); ok {
		userID = id
	}
	if id, ok := c.GetQueryFunc(reflect.Int, "job_id").(*int); ok {
		jobID = id
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}
	if userID == nil || jobID == nil {
		return c.RespondError(web.NewRequestError(errors.New("user_id and job_id parameters are required"), http.StatusBadRequest))
	}

	settings, err := jc.job.ResolveSettings(c.Ctx, *userID, *jobID)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   settings,
		"status": true,
	}, http.StatusOK)
}

func (jc Controller) CreateJob(c *web.Context) error {
	var request job.CreateRequest
	if err := c.BindFunc(&request, "Title", "PayType"); err != nil {
		return c.RespondError(err)
	}

	response, err := jc.job.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (jc Controller) UpdateJobColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request job.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := jc.job.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (jc Controller) RetireJob(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := jc.job.Retire(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (jc Controller) AssignJob(c *web.Context) error {
	var request job.AssignRequest
	if err := c.BindFunc(&request, "UserID", "JobID"); err != nil {
		return c.RespondError(err)
	}

	err := jc.job.Assign(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}
