package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/dmitrijs2005/gophsocial/internal/server/models"
)

//go:embed views/*.html
var viewsFS embed.FS

func parseViews() (*template.Template, error) {
	return template.ParseFS(viewsFS, "views/*.html")
}

type homeView struct {
	Title string
	Users []models.User
	Posts []models.Post
}

// home renders the layout with the current users and posts.
func (s *HTTPServer) home(w http.ResponseWriter, r *http.Request) error {
	users, err := s.users.List(r.Context())
	if err != nil {
		return err
	}
	posts, err := s.posts.List(r.Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := s.views.ExecuteTemplate(&buf, "layout", homeView{Title: "Red social", Users: users, Posts: posts}); err != nil {
		return err
	}

	writeText(w, http.StatusOK, "text/html; charset=utf-8", buf.String())
	return nil
}

// homepage returns the configured HTML file as-is, re-reading it on every
// request.
func (s *HTTPServer) homepage(w http.ResponseWriter, r *http.Request) error {
	html, err := os.ReadFile(s.homepageFile)
	if err != nil {
		return err
	}

	writeText(w, http.StatusOK, "text/html; charset=utf-8", string(html))
	return nil
}

func (s *HTTPServer) test(w http.ResponseWriter, r *http.Request) error {
	writeText(w, http.StatusOK, "text/plain; charset=utf-8", "This is comin")
	return nil
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) error {
	writeText(w, http.StatusOK, "text/plain; charset=utf-8", "OK")
	return nil
}

// notFound serves a regular file from the static directory when one matches
// the path of a GET or HEAD request, and the generic 404 envelope otherwise.
func (s *HTTPServer) notFound(w http.ResponseWriter, r *http.Request) error {
	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && s.staticFileExists(r.URL.Path) {
		http.FileServer(http.Dir(s.staticDir)).ServeHTTP(w, r)
		return nil
	}
	return statusError(http.StatusNotFound, resourceNotFoundMessage)
}

func (s *HTTPServer) staticFileExists(urlPath string) bool {
	if s.staticDir == "" {
		return false
	}

	name := filepath.Join(s.staticDir, filepath.FromSlash(path.Clean("/"+urlPath)))
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}

func (s *HTTPServer) methodNotAllowed(w http.ResponseWriter, r *http.Request) error {
	return statusError(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
