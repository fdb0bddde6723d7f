package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/formrules/pkg/file"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Record builds a validation record from an HTTP request.
//
// Query parameters are always included. Bodies are read by media type:
// application/x-www-form-urlencoded, multipart/form-data and
// application/json. Fields with one value hold a string, repeated fields a
// []string. Uploaded files are staged and stored as file.Descriptor, or
// []file.Descriptor when a field carries several files.
func Record(r *http.Request, opts ...Option) (validator.Record, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	record := make(validator.Record)
	addValues(record, r.URL.Query())

	if r.Body == nil || r.Body == http.NoBody || r.Method == http.MethodGet || r.Method == http.MethodHead {
		return record, nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return record, nil
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		addValues(record, r.PostForm)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(o.maxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		addValues(record, r.MultipartForm.Value)
		if err := addFiles(r, record, o); err != nil {
			return nil, err
		}
	case "application/json":
		if err := addJSON(record, r.Body); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
	}
	return record, nil
}

func addValues(record validator.Record, values url.Values) {
	for key, vals := range values {
		switch len(vals) {
		case 0:
		case 1:
			record[key] = vals[0]
		default:
			record[key] = append([]string(nil), vals...)
		}
	}
}

// addFiles stages every upload. When one fails, the files staged so far
// are discarded.
func addFiles(r *http.Request, record validator.Record, o *options) error {
	var staged []string
	for field, headers := range r.MultipartForm.File {
		files := make([]file.Descriptor, 0, len(headers))
		for _, fh := range headers {
			path, err := o.stager(r.Context(), fh)
			if err != nil {
				for _, p := range staged {
					_ = o.cleanup(p)
				}
				return fmt.Errorf("%w: field %q: %w", ErrStagingFile, field, err)
			}
			staged = append(staged, path)
			files = append(files, file.FromFileHeader(fh, path))
		}
		if len(files) == 1 {
			record[field] = files[0]
		} else {
			record[field] = files
		}
	}
	return nil
}

func addJSON(record validator.Record, body io.Reader) error {
	var payload map[string]any
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	for key, value := range payload {
		record[key] = value
	}
	return nil
}
