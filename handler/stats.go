package handler

import (
	"adboard/config"
	"adboard/middleware"
	"adboard/pkg/context"
	"adboard/pkg/response"
	"adboard/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Stats struct {
	Config       *config.Config
	StatsService service.IStatsService
}

func (h *Stats) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/stats", authorize)
	g.GET("/all", context.Wrap(h.All))
	g.GET("/user/:user_id", context.Wrap(h.ByUser))
}

func (h *Stats) All(c *gin.Context) error {
	stats, err := h.StatsService.GetAll(c.Request.Context())
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, stats)
	return nil
}

func (h *Stats) ByUser(c *gin.Context) error {
	uid, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的用户 id")
	}

	stat, err := h.StatsService.GetByUser(c.Request.Context(), uid)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	if stat == nil {
		return response.NewError(http.StatusNotFound, "暂无统计数据")
	}
	response.Success(c, stat)
	return nil
}
