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

type Advertisement struct {
	Config               *config.Config
	AdvertisementService service.IAdvertisementService
	PreferenceService    service.IPreferenceService
}

func (h *Advertisement) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/advertisement")
	g.GET("/list", optional, context.Wrap(h.List))
	g.GET("/:advertisement_id", optional, context.Wrap(h.Detail))
	g.POST("/create", authorize, context.Wrap(h.Create))
	g.POST("/update", authorize, context.Wrap(h.Update))
	g.POST("/delete", authorize, context.Wrap(h.Delete))
}

func (h *Advertisement) Create(c *gin.Context) error {
	var req types.CreateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	adv, err := h.AdvertisementService.Create(c.Request.Context(), uid, &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, &types.CreateAdvertisementResponse{AdvertisementID: adv.ID})
	return nil
}

func (h *Advertisement) Update(c *gin.Context) error {
	var req types.UpdateAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	err = h.AdvertisementService.Update(c.Request.Context(), uid, context.GetIsAdmin(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdvertisementNotFound):
			return response.NewError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPermissionDenied):
			return response.NewError(http.StatusForbidden, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, nil)
	return nil
}

func (h *Advertisement) Delete(c *gin.Context) error {
	var req types.DeleteAdvertisementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	err = h.AdvertisementService.Delete(c.Request.Context(), uid, req.AdvertisementID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdvertisementNotFound):
			return response.NewError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrOnlyAuthorCanDelete):
			return response.NewError(http.StatusForbidden, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, nil)
	return nil
}

func (h *Advertisement) Detail(c *gin.Context) error {
	advID, err := strconv.ParseUint(c.Param("advertisement_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的公告 id")
	}

	detail, err := h.AdvertisementService.Detail(c.Request.Context(), context.OptionalUserID(c), advID)
	if err != nil {
		if errors.Is(err, service.ErrAdvertisementNotFound) {
			return response.NewError(http.StatusNotFound, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, detail)
	return nil
}

func (h *Advertisement) List(c *gin.Context) error {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	uid := context.OptionalUserID(c)
	pageSize := h.PreferenceService.ResolvePageSize(c.Request.Context(), uid, c.Query("cnt"))

	var authorID uint64
	if raw := c.Query("author_id"); raw != "" {
		authorID, _ = strconv.ParseUint(raw, 10, 64)
	}

	resp, err := h.AdvertisementService.List(c.Request.Context(), authorID, page, pageSize)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, resp)
	return nil
}
