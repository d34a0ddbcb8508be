package handler

import (
	"github.com/zenlog/internal/service"
	"github.com/zenlog/internal/store"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	store   *store.ContentStore
	editor  *service.PostEditor
	moments *service.MomentCapture
	gallery *service.GalleryService
	assist  *service.AIAssistService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(cs *store.ContentStore, assist *service.AIAssistService) *API {
	return &API{
		store:   cs,
		editor:  service.NewPostEditor(cs, assist, assist),
		moments: service.NewMomentCapture(cs, assist),
		gallery: service.NewGalleryService(cs),
		assist:  assist,
	}
}

// Editor exposes the post editor workflow, mainly for tests.
func (a *API) Editor() *service.PostEditor {
	return a.editor
}
