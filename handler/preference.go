package handler

import (
	"adboard/config"
	"adboard/middleware"
	"adboard/pkg/context"
	"adboard/pkg/response"
	"adboard/service"
	"adboard/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Preference struct {
	Config            *config.Config
	PreferenceService service.IPreferenceService
}

func (h *Preference) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/settings", authorize)
	g.GET("", context.Wrap(h.Get))
	g.POST("", context.Wrap(h.Update))
	g.POST("/theme/toggle", context.Wrap(h.ToggleTheme))
}

func (h *Preference) Get(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	pref, err := h.PreferenceService.GetOrCreate(c.Request.Context(), uid)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, pref)
	return nil
}

func (h *Preference) Update(c *gin.Context) error {
	var req types.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	pref, err := h.PreferenceService.Update(c.Request.Context(), uid, req.Theme, req.PageSize)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, pref)
	return nil
}

func (h *Preference) ToggleTheme(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	pref, err := h.PreferenceService.ToggleTheme(c.Request.Context(), uid)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
	response.Success(c, gin.H{"theme": pref.Theme})
	return nil
}
