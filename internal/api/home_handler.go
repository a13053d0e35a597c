package api

import (
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
)

// Version is the API version reported by the home endpoint.
const Version = "1.0.0"

// HomeResponse is the body returned by the home endpoint.
type HomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HandleHome handles GET / requests with a readiness message.
func HandleHome(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HomeResponse{
		Message: "Todo API - Ready",
		Version: Version,
	})
}
