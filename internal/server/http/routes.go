package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (s *HTTPServer) routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/usuarios", s.handle(s.createUser)).Methods(http.MethodPost)
	r.HandleFunc("/usuarios", s.handle(s.listUsers)).Methods(http.MethodGet)

	r.HandleFunc("/publicaciones", s.handle(s.createPost)).Methods(http.MethodPost)
	r.HandleFunc("/publicaciones", s.handle(s.listPosts)).Methods(http.MethodGet)
	r.HandleFunc("/publicaciones/{id}/comentarios", s.handle(s.addComment)).Methods(http.MethodPost)

	r.HandleFunc("/", s.handle(s.home)).Methods(http.MethodGet)
	r.HandleFunc("/index", s.handle(s.homepage)).Methods(http.MethodGet)
	r.HandleFunc("/test", s.handle(s.test)).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handle(s.health)).Methods(http.MethodGet)

	r.NotFoundHandler = s.handle(s.notFound)
	r.MethodNotAllowedHandler = s.handle(s.methodNotAllowed)

	return r
}
