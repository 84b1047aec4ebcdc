package http

import (
	"net/http"
)

func (h *Handler) handleActivitiesList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activities_list"

	catalog, err := h.Activities.ListActivities(r.Context())
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_signup"

	activityName, err := activityNameParam(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	email := r.URL.Query().Get("email")
	if err := ValidateEmailQuery(email); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	res, err := h.Activities.Signup(r.Context(), activityName, email)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleUnregister(w http.ResponseWriter, r *http.Request) {
	const handlerName = "activity_unregister"

	activityName, err := activityNameParam(r)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}
	email := r.URL.Query().Get("email")
	if err := ValidateEmailQuery(email); err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	res, err := h.Activities.Unregister(r.Context(), activityName, email)
	if err != nil {
		h.writeError(w, r, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}
