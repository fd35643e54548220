package server

import (
	"adboard/handler"
)

type Handlers struct {
	Auth          *handler.Auth
	Advertisement *handler.Advertisement
	Comment       *handler.Comment
	Reaction      *handler.Reaction
	Stats         *handler.Stats
	Preference    *handler.Preference
	Generation    *handler.Generation
	Image         *handler.Image
}
