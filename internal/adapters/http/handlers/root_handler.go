package handlers

import "net/http"

// Root handles GET /. It returns a short plain-text banner identifying
// the service.
func Root(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "Todo API is running\n")
}
