package handler

import (
	"adboard/config"
	"adboard/middleware"
	"adboard/pkg/context"
	"adboard/pkg/jwt"
	"adboard/pkg/response"
	"adboard/service"
	"adboard/types"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/v1/auth")
	auth.POST("/signup", context.Wrap(u.Signup))
	auth.POST("/login", context.Wrap(u.Login))
	auth.POST("/logout", middleware.Auth([]byte(u.Config.Jwt.Secret)), context.Wrap(u.Logout))
}

func (u *Auth) Signup(c *gin.Context) error {
	var req types.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, gin.H{"user_id": user.ID})
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	user, err := u.UserService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	token, err := jwt.GenerateToken(
		[]byte(u.Config.Jwt.Secret),
		user.ID,
		user.IsAdmin,
		"access",
		24*time.Hour,
	)
	if err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, &types.LoginResponse{
		AccessToken: token,
		User:        user,
	})
	return nil
}

// Logout token 无状态，服务端只确认身份后应答，由客户端丢弃 token
func (u *Auth) Logout(c *gin.Context) error {
	if _, err := context.GetUserID(c); err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}
	response.Success(c, nil)
	return nil
}
