package http

import (
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophsocial/internal/common"
	"github.com/dmitrijs2005/gophsocial/internal/server/models"
	"github.com/gorilla/mux"
)

// multipartMemory is how much of a multipart body is buffered in memory
// before spilling file parts to temporary files.
const multipartMemory = 8 << 20

type createUserRequest struct {
	Name     string `json:"nombre"`
	Surname  string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"admin"`
}

func (req createUserRequest) toModel() *models.User {
	return &models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	}
}

type createPostRequest struct {
	Text  string `json:"texto"`
	Image []byte `json:"-"`
}

type addCommentRequest struct {
	Author string `json:"autor"`
	Text   string `json:"texto"`
}

func (s *HTTPServer) createUser(w http.ResponseWriter, r *http.Request) error {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	user, err := s.users.Add(r.Context(), req.toModel())
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, user)
	return nil
}

func (s *HTTPServer) listUsers(w http.ResponseWriter, r *http.Request) error {
	lines, err := s.users.ListSummaries(r.Context())
	if err != nil {
		return err
	}

	writeText(w, http.StatusOK, "text/plain; charset=utf-8", strings.Join(lines, "\n"))
	return nil
}

func (s *HTTPServer) createPost(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)

	req, err := parseCreatePost(r)
	if err != nil {
		return err
	}

	post, err := s.posts.Create(r.Context(), req.Text, req.Image)
	if err != nil {
		return err
	}

	s.logger.Debug(r.Context(), "post created", "req_id", RequestIDFromContext(r.Context()), "id", post.ID, "image_bytes", len(post.Image))

	writeJSON(w, http.StatusCreated, post)
	return nil
}

// parseCreatePost reads texto and the optional imagen file from a multipart
// form, texto from a urlencoded form, or {"texto": ...} from a JSON body.
func parseCreatePost(r *http.Request) (*createPostRequest, error) {
	req := &createPostRequest{}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return nil, formError(err)
		}
		defer r.MultipartForm.RemoveAll()
		req.Text = r.PostFormValue("texto")

		image, err := readFormFile(r, "imagen")
		if err != nil {
			return nil, err
		}
		req.Image = image

	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, formError(err)
		}
		req.Text = r.PostFormValue("texto")

	default:
		if err := decodeJSON(r, req); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// readFormFile returns the content of the named file field, or nil when the
// form has no such field.
func readFormFile(r *http.Request, field string) ([]byte, error) {
	f, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, formError(err)
	}
	defer f.Close()

	return io.ReadAll(f)
}

func formError(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) || errors.Is(err, multipart.ErrMessageTooLarge) || strings.Contains(err.Error(), "request body too large") {
		return &StatusError{Status: http.StatusRequestEntityTooLarge, Err: err}
	}
	return &StatusError{Status: http.StatusBadRequest, Err: err}
}

func (s *HTTPServer) listPosts(w http.ResponseWriter, r *http.Request) error {
	posts, err := s.posts.List(r.Context())
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, posts)
	return nil
}

func (s *HTTPServer) addComment(w http.ResponseWriter, r *http.Request) error {
	var req addCommentRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}

	// a non-numeric id can never match a post
	postID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeJSON(w, http.StatusNotFound, notFoundEnvelope{Error: postNotFoundMessage})
		return nil
	}

	comment, err := s.posts.AddComment(r.Context(), postID, req.Author, req.Text)
	if errors.Is(err, common.ErrorNotFound) {
		writeJSON(w, http.StatusNotFound, notFoundEnvelope{Error: postNotFoundMessage})
		return nil
	}
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusCreated, comment)
	return nil
}
