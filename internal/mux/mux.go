package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	workers int
}

// NewMux returns a new HTTP mux
// workers limits how many hands of a single request are classified at once
func NewMux(version string, workers int) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		workers: workers,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/classify").Handler(this.postClassify())
	r.Methods(http.MethodPost).Path("/showdown").Handler(this.postShowdown())

	return this
}
