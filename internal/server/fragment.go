package server

import (
	"html/template"
	"net/http"
)

func (h *handlers) writeFragment(w http.ResponseWriter, fragment template.HTML, err error) {
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError, "")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(fragment))
}
