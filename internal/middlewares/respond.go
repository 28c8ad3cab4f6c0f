package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/poetree/internal/models"
)

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(models.Response[any]{Success: false, Message: message})
}
