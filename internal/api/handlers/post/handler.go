package post

import (
	"inkwell/internal/core/blobs"
	"inkwell/internal/core/posts"
)

// PostHandler handles the post lifecycle endpoints
type PostHandler struct {
	service posts.Service
	blobs   blobs.Service
}

// NewPostHandler creates a new post handler
func NewPostHandler(service posts.Service, blobService blobs.Service) *PostHandler {
	return &PostHandler{
		service: service,
		blobs:   blobService,
	}
}
