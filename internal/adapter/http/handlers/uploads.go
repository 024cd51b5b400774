package handlers

import (
	"errors"
	"io"
	"net/http"

	"freightdesk/internal/infrastructure/freightapi"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps attachment size before the bytes are buffered for
// the upstream multipart request.
const maxUploadBytes = 10 << 20

// readUpload extracts an optional file field from a multipart form.
// A missing file is not an error.
func readUpload(c *gin.Context, field string) (*freightapi.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	if header.Size > maxUploadBytes {
		return nil, errors.New("file too large")
	}

	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return nil, err
	}
	return &freightapi.Upload{Filename: header.Filename, Content: content}, nil
}
