package server

import (
	"net/http"
	"strconv"
)

type handler struct {
	*Server
}

type page struct {
	Title  string
	Closed bool
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, page{Title: h.Title})
}

func (h *handler) ChartPNG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(h.png)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(h.png); err != nil {
		h.log.Println(err)
	}
}

func (h *handler) Close(w http.ResponseWriter, r *http.Request) {
	h.render(w, page{Title: h.Title, Closed: true})
	h.close()
}

func (h *handler) render(w http.ResponseWriter, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tpl.Execute(w, p); err != nil {
		h.log.Println(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{if .Closed}}
<p>The viewer has been closed. You can close this tab.</p>
{{else}}
<form method="post" action="/close">
<button type="submit">Close</button>
</form>
<img src="/chart.png" alt="{{.Title}}">
{{end}}
</body>
</html>
`
