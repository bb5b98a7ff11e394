package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/interpose/middleware"
	"github.com/justinas/alice"
)

// Router serves the page, the chart image and the close action.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()
	POST := router.Methods("POST").Subrouter()
	GET := router.Methods("GET", "HEAD").Subrouter()

	h := handler{Server: s}

	GET.HandleFunc("/", h.Index).Name("index")
	GET.HandleFunc("/chart.png", h.ChartPNG).Name("chart")

	//
	// POST
	//
	POST.HandleFunc("/close", h.Close).Name("close")

	standard := alice.New(
		// Log all requests to STDOUT
		middleware.GorillaLog(),
	)

	return standard.Then(router)
}
