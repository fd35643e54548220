package handler

import (
	"adboard/config"
	"adboard/middleware"
	"adboard/models"
	"adboard/pkg/context"
	"adboard/pkg/response"
	"adboard/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Reaction struct {
	Config          *config.Config
	ReactionService service.IReactionService
}

func (h *Reaction) RegisterRouter(r gin.IRouter) {
	optional := middleware.OptionalAuth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/like")
	// 匿名请求同样放行，服务层静默忽略
	g.POST("/:advertisement_id/:kind", optional, context.Wrap(h.Set))
}

func (h *Reaction) Set(c *gin.Context) error {
	advID, err := strconv.ParseUint(c.Param("advertisement_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的公告 id")
	}

	var kind uint8
	switch c.Param("kind") {
	case "like":
		kind = models.ReactionLike
	case "dislike":
		kind = models.ReactionDislike
	default:
		return response.NewError(http.StatusBadRequest, "无效的反应类型")
	}

	uid := context.OptionalUserID(c)
	err = h.ReactionService.SetReaction(c.Request.Context(), uid, advID, kind)
	if err != nil {
		if errors.Is(err, service.ErrAdvertisementNotFound) {
			return response.NewError(http.StatusNotFound, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, nil)
	return nil
}
