package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	gallerydomain "law-office-go/internal/domain/gallery"
)

func (h *Handlers) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("photo")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, "invalid_request", "photo exceeds the upload size limit")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request", "photo file is required")
		return
	}
	defer file.Close()

	url, err := h.Gallery.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		if errors.Is(err, gallerydomain.ErrUnsupportedType) {
			writeError(w, http.StatusBadRequest, "invalid_request", "only jpeg, png and gif images are accepted")
			return
		}
		h.log.InternalError("gallery.upload: save failed", err, "filename", header.Filename)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"photoUrl": url})
}

func (h *Handlers) ListGallery(w http.ResponseWriter, r *http.Request) {
	photos, err := h.Gallery.List(r.Context())
	if err != nil {
		h.log.InternalError("gallery.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if photos == nil {
		photos = []gallerydomain.Photo{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"photos": photos})
}

func (h *Handlers) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	if err := h.Gallery.Delete(r.Context(), filename); err != nil {
		switch {
		case errors.Is(err, gallerydomain.ErrInvalidFilename):
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid filename")
		case errors.Is(err, gallerydomain.ErrPhotoNotFound):
			writeError(w, http.StatusNotFound, "not_found", "photo not found")
		default:
			h.log.InternalError("gallery.delete: remove failed", err, "filename", filename)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "photo deleted"})
}
