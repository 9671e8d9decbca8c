package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/gophsocial/internal/logging"
	"github.com/dmitrijs2005/gophsocial/internal/server/config"
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophsocial/internal/server/services"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	server *HTTPServer
	users  *services.UserService
	posts  *services.PostService
	cfg    *config.Config
}

func newTestEnv(t *testing.T, opts ...func(*config.Config)) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StaticDir = t.TempDir()
	cfg.HomepageFile = ""
	for _, o := range opts {
		o(cfg)
	}

	m := repomanager.NewInMemoryRepositoryManager()
	us := services.NewUserService(m)
	ps := services.NewPostService(m)

	s, err := NewHTTPServer(cfg, logging.Nop(), us, ps)
	require.NoError(t, err)

	return &testEnv{server: s, users: us, posts: ps, cfg: cfg}
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doJSON(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return e.do(t, req)
}

func multipartPost(t *testing.T, target string, fields map[string]string, fileField string, file []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, "foto.png")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
