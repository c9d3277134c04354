package post

import (
	"errors"
	"log"
	"net/http"

	"inkwell/internal/api/handlers"
	"inkwell/internal/api/middleware"
	"inkwell/internal/core/blobs"
	"inkwell/internal/core/posts"
)

// HandleCreate creates a post from a multipart form with an optional
// image attachment
// POST /api/posts
//
// Form fields: title, content, isPublished ("true"/"false"), attachment (file)
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)

	if err := r.ParseMultipartForm(blobs.MaxUploadSize); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid multipart form")
		return
	}

	req := posts.CreatePostRequest{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
		Publish: r.FormValue("isPublished") == "true",
	}

	// Store the attachment before the post row so a failed upload never
	// leaves a post pointing at nothing
	file, header, err := r.FormFile("attachment")
	switch {
	case err == nil:
		defer file.Close()
		path, storeErr := h.blobs.Store(r.Context(), file, header.Filename)
		if storeErr != nil {
			handleBlobError(w, storeErr)
			return
		}
		req.AttachmentPath = &path
	case errors.Is(err, http.ErrMissingFile):
		// Attachments are optional
	default:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid attachment upload")
		return
	}

	created, err := h.service.CreatePost(r.Context(), actor, req)
	if err != nil {
		// A rejected post must not strand its attachment on disk
		if req.AttachmentPath != nil {
			if rmErr := h.blobs.Remove(r.Context(), *req.AttachmentPath); rmErr != nil {
				log.Printf("Failed to remove orphaned attachment: %v", rmErr)
			}
		}
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Post created successfully",
		"postId":  created.ID,
	})
}

func handleBlobError(w http.ResponseWriter, err error) {
	switch err {
	case blobs.ErrBlobTooLarge:
		handlers.WriteError(w, http.StatusBadRequest, "AttachmentTooLarge", "Attachment exceeds the maximum upload size")
	case blobs.ErrUnsupportedType:
		handlers.WriteError(w, http.StatusBadRequest, "UnsupportedAttachment", "Only JPEG, PNG, or GIF images are allowed")
	case blobs.ErrEmptyBlob:
		handlers.WriteError(w, http.StatusBadRequest, "EmptyAttachment", "Attachment is empty")
	default:
		log.Printf("Attachment store error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to store attachment")
	}
}
