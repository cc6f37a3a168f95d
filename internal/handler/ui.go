package handler

import (
	_ "embed"
	"net/http"
)

//go:embed web/index.html
var indexPage []byte

// HandleIndex serves the browser front end: a generation form and a live
// strength meter that posts to /api/v1/strength on every keystroke.
func HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}
