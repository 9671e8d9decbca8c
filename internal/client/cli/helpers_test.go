package cli

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophsocial/internal/logging"
	"github.com/dmitrijs2005/gophsocial/internal/server/config"
	"github.com/dmitrijs2005/gophsocial/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophsocial/internal/server/services"
	"github.com/stretchr/testify/require"

	hs "github.com/dmitrijs2005/gophsocial/internal/server/http"
)

// startServer runs the REST API in-process and returns its base URL.
func startServer(t *testing.T) string {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StaticDir = t.TempDir()
	cfg.HomepageFile = filepath.Join(t.TempDir(), "homepage.html")

	rm := repomanager.NewInMemoryRepositoryManager()
	s, err := hs.NewHTTPServer(cfg, logging.Nop(), services.NewUserService(rm), services.NewPostService(rm))
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts.URL
}

func runCLI(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin == nil {
		stdin = bytes.NewReader(nil)
	}
	cmd.SetIn(stdin)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func stubPassword(t *testing.T, pw string, err error) {
	t.Helper()
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		return []byte(pw), err
	}
}
