package handlers

import (
	"log"
	"net/http"
)

type PageHandler struct {
	page []byte
}

func NewPageHandler(page []byte) *PageHandler {
	return &PageHandler{page: page}
}

// Index serves the restaurant finder page.
func (h *PageHandler) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.page); err != nil {
		log.Printf("Failed to write page: %v", err)
	}
}
