package handler

import (
	"adboard/config"
	"adboard/middleware"
	"adboard/pkg/context"
	"adboard/pkg/response"
	"adboard/service"
	"adboard/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Generation struct {
	Config            *config.Config
	GenerationService service.IGenerationService
}

func (h *Generation) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/generation", authorize)
	g.POST("/advertisement/:advertisement_id", context.Wrap(h.Trigger))
	g.GET("/job/:job_id", context.Wrap(h.Job))
}

func (h *Generation) Trigger(c *gin.Context) error {
	advID, err := strconv.ParseUint(c.Param("advertisement_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的公告 id")
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	job, err := h.GenerationService.Trigger(c.Request.Context(), uid, advID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdvertisementNotFound):
			return response.NewError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrGenerationInFlight):
			return response.NewError(http.StatusConflict, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, &types.TriggerGenerationResponse{JobID: job.ID})
	return nil
}

func (h *Generation) Job(c *gin.Context) error {
	jobID, err := strconv.ParseUint(c.Param("job_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的任务 id")
	}

	job, err := h.GenerationService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, job)
	return nil
}
