package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/notes/internal/core/domain"
	"github.com/vncsmyrnk/notes/internal/core/ports"
)

type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{
		service: service,
	}
}

type noteRequest struct {
	Text string `json:"text"`
}

type notesResponse struct {
	Notes []*domain.Note `json:"notes"`
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	input := ports.ListNotesInput{
		Page:    queryInt(r, "page", 1),
		PerPage: queryInt(r, "per_page", 20),
	}

	notes, err := h.service.List(r.Context(), input)
	if err != nil {
		respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}
	if notes == nil {
		notes = []*domain.Note{}
	}

	respondJSON(w, http.StatusOK, notesResponse{Notes: notes})
}

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := noteID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	note, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	respondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.service.Create(r.Context(), req.Text, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyText) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		return
	}

	respondJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	id, err := noteID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	note, err := h.service.Update(r.Context(), id, req.Text, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyText):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNoteNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrNotNoteOwner):
			respondError(w, http.StatusForbidden, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, note)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing user context")
		return
	}

	id, err := noteID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid note id")
		return
	}

	if err := h.service.Delete(r.Context(), id, user.ID); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoteNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrNotNoteOwner):
			respondError(w, http.StatusForbidden, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, domain.ErrInternal.Error())
		}
		return
	}

	respondJSON(w, http.StatusOK, struct{}{})
}

func noteID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func queryInt(r *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
