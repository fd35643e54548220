package handler

import (
	"adboard/config"
	"adboard/middleware"
	"adboard/pkg/context"
	"adboard/pkg/response"
	"adboard/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Image struct {
	Config         *config.Config
	StorageService service.IStorageService
}

func (h *Image) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/image", authorize)
	g.POST("/upload", context.Wrap(h.Upload))
	g.POST("/delete/:image_id", context.Wrap(h.Delete))
}

func (h *Image) Upload(c *gin.Context) error {
	advID, err := strconv.ParseUint(c.PostForm("advertisement_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的公告 id")
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	resp, err := h.StorageService.UploadImage(c.Request.Context(), uid, advID, header)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdvertisementNotFound):
			return response.NewError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPermissionDenied):
			return response.NewError(http.StatusForbidden, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, resp)
	return nil
}

func (h *Image) Delete(c *gin.Context) error {
	imageID, err := strconv.ParseUint(c.Param("image_id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "无效的图片 id")
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	err = h.StorageService.DeleteImage(c.Request.Context(), uid, context.GetIsAdmin(c), imageID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageNotFound):
			return response.NewError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPermissionDenied):
			return response.NewError(http.StatusForbidden, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, nil)
	return nil
}
