package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrInvalidUpload rejects a categorize upload before any network effect.
var ErrInvalidUpload = errors.New("invalid upload file")

// ValidateUploadPath checks that the path names a .json file. Content
// validation happens separately once the file is read.
func ValidateUploadPath(path string) error {
	err := validation.Validate(path,
		validation.Required,
		validation.By(func(value any) error {
			if !strings.EqualFold(filepath.Ext(value.(string)), ".json") {
				return errors.New("must have a .json extension")
			}
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}
	return nil
}

// Categorize uploads a JSON document of saved posts to the
// categorization endpoint as a multipart form (field "file"). The file
// is validated client-side (.json extension, parseable JSON) before
// anything is sent; the server response body is not consumed.
func (c *Client) Categorize(ctx context.Context, path string) error {
	if err := ValidateUploadPath(path); err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read upload file: %w", err)
	}
	if !json.Valid(content) {
		return fmt.Errorf("%w: not parseable JSON", ErrInvalidUpload)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/bookmarks/categorize", &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	if _, err := c.do(req); err != nil {
		return err
	}
	return nil
}
