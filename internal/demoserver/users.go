package demoserver

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"azushop-client/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UserHandler handles account and authentication endpoints
type UserHandler struct {
	store  *Store
	tokens *Tokens
}

// NewUserHandler creates a new user handler
func NewUserHandler(store *Store, tokens *Tokens) *UserHandler {
	return &UserHandler{store: store, tokens: tokens}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents a profile update
type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UpdateUserRequest represents an admin user update
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	IsAdmin  *bool   `json:"isAdmin"`
}

// Register handles account creation and logs the new account in
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	user, err := h.store.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"user":  user,
		"token": token,
	})
}

// Login handles email/password authentication
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":  user,
		"token": token,
	})
}

// Logout acknowledges logout. Tokens are stateless so there is nothing
// to revoke server-side; clients discard their local session.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Profile returns the authenticated user's account
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	authed, _ := middleware.GetUser(r.Context())

	user, err := h.store.GetUser(authed.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// UpdateProfile updates the authenticated user's account
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	authed, _ := middleware.GetUser(r.Context())

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	user, err := h.store.UpdateUser(authed.ID, req.Username, req.Email, req.Password, nil)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// UploadProfilePicture accepts a multipart image upload. The demo
// server records a synthetic URL instead of persisting the bytes.
func (h *UserHandler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	authed, _ := middleware.GetUser(r.Context())

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, `{"message":"Invalid multipart body"}`, http.StatusBadRequest)
		return
	}

	_, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, `{"message":"Missing image file"}`, http.StatusBadRequest)
		return
	}

	picture := "/uploads/" + uuid.New().String() + filepath.Ext(header.Filename)
	user, err := h.store.SetProfilePicture(authed.ID, picture)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// List returns all accounts (admin)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListUsers())
}

// Get returns one account by id (admin)
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetUser(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Update modifies an account by id (admin)
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"message":"Invalid request body"}`, http.StatusBadRequest)
		return
	}

	user, err := h.store.UpdateUser(chi.URLParam(r, "id"), req.Username, req.Email, req.Password, req.IsAdmin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// Delete removes an account by id (admin)
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteUser(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "User removed"})
}
