package handler

import (
	"net/http"

	"github.com/optouthub/optouthub-go/internal/xhttp"
)

func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteOK(w, map[string]string{"status": "ok"})
}
