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

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/comment", authorize)
	g.POST("/create", context.Wrap(h.Create))
	g.POST("/update", context.Wrap(h.Update))
	g.POST("/delete", context.Wrap(h.Delete))
}

func (h *Comment) Create(c *gin.Context) error {
	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	comment, err := h.CommentService.Create(c.Request.Context(), uid, &req)
	if err != nil {
		if errors.Is(err, service.ErrAdvertisementNotFound) {
			return response.NewError(http.StatusNotFound, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"comment_id": comment.ID})
	return nil
}

func (h *Comment) Update(c *gin.Context) error {
	var req types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	err = h.CommentService.Update(c.Request.Context(), uid, context.GetIsAdmin(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			return response.NewError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrPermissionDenied):
			return response.NewError(http.StatusForbidden, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, nil)
	return nil
}

func (h *Comment) Delete(c *gin.Context) error {
	var req types.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	err = h.CommentService.Delete(c.Request.Context(), uid, req.CommentID)
	if err != nil {
		if errors.Is(err, service.ErrCommentNotFound) {
			return response.NewError(http.StatusNotFound, err.Error())
		}
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, nil)
	return nil
}
