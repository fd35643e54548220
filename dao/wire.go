package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewAdvertisementDAO,
	NewImage,
	NewComment,
	NewReactionDAO,
	NewUserStatDAO,
	NewPreferencesDAO,
	NewGenerationJobDAO,
)
