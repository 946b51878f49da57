package router

import (
	"tripdiary-service/internal/usecase"
	"tripdiary-service/pkg/logger"
)

// ContentRouter routes document content blocks to the appropriate handler
// based on the section label
type ContentRouter struct {
	handlers []usecase.ContentHandler
	logger   logger.Logger
}

// NewContentRouter creates a new content router
func NewContentRouter(logger logger.Logger) *ContentRouter {
	return &ContentRouter{
		handlers: make([]usecase.ContentHandler, 0),
		logger:   logger,
	}
}

// Register registers a handler for specific section labels
func (r *ContentRouter) Register(handler usecase.ContentHandler) {
	r.handlers = append(r.handlers, handler)
	r.logger.Info("Registered content handler", "kind", handler.Kind())
}

// GetHandler returns the appropriate handler for a given section
func (r *ContentRouter) GetHandler(section string) usecase.ContentHandler {
	for _, handler := range r.handlers {
		if handler.CanHandle(section) {
			return handler
		}
	}
	return nil
}
