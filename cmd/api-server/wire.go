//go:build wireinject
// +build wireinject

package main

import (
	"adboard/config"
	"adboard/dao"
	"adboard/handler"
	"adboard/pkg/client"
	"adboard/pkg/database"
	"adboard/pkg/server"
	"adboard/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideAppConfig,
		config.ProvideOssConfig,
		config.ProvideKandinskyConfig,
		server.NewGinEngine,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Advertisement), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Reaction), "*"),
		wire.Struct(new(handler.Stats), "*"),
		wire.Struct(new(handler.Preference), "*"),
		wire.Struct(new(handler.Generation), "*"),
		wire.Struct(new(handler.Image), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
