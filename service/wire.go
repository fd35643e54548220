package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),

	wire.Struct(new(ReactionService), "*"),
	wire.Bind(new(IReactionService), new(*ReactionService)),

	wire.Struct(new(PreferenceService), "*"),
	wire.Bind(new(IPreferenceService), new(*PreferenceService)),

	wire.Struct(new(AdvertisementService), "*"),
	wire.Bind(new(IAdvertisementService), new(*AdvertisementService)),

	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),

	NewStorageService,

	NewGenerationService,
	wire.Bind(new(IGenerationService), new(*GenerationService)),
)
