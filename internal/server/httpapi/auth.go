package httpapi

import (
	"encoding/json"
	"net/http"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *Router) handleRegister(w http.ResponseWriter, req *http.Request) {
	var body credentialsRequest
	// Decode errors leave the fields empty; the service answers with the
	// missing-credentials failure, same as absent fields.
	_ = json.NewDecoder(req.Body).Decode(&body)

	if _, err := r.users.Register(req.Context(), body.Username, body.Password); err != nil {
		r.writeError(w, req, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "User successfully registered"})
}

func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) {
	var body credentialsRequest
	_ = json.NewDecoder(req.Body).Decode(&body)

	token, err := r.users.Login(req.Context(), body.Username, body.Password)
	if err != nil {
		r.writeError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"status":  true,
	})
}
