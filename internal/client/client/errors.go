package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophsocial/internal/common"
)

var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-2xx answer from the REST API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

func (e *APIError) Is(target error) bool {
	return e.Status == http.StatusNotFound && target == common.ErrorNotFound
}
