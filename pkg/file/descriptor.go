package file

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
)

// Upload transport error codes. The numbering follows the classic multipart
// upload convention so descriptors produced by other stacks map one to one.
const (
	UploadOK        = 0 // no error
	UploadIniSize   = 1 // exceeds the server-wide size limit
	UploadFormSize  = 2 // exceeds the limit declared by the form
	UploadPartial   = 3 // only partially received
	UploadNoFile    = 4 // nothing was uploaded
	UploadNoTmpDir  = 6 // missing temporary directory
	UploadCantWrite = 7 // failed to write to disk
	UploadExtension = 8 // stopped by a server extension
)

// Descriptor is the normalized view of one uploaded file.
type Descriptor struct {
	Name    string `json:"name"`
	Size    int64  `json:"size"`
	Error   int    `json:"error"`
	TmpPath string `json:"tmp_path"`
}

// IsEmpty reports whether the descriptor stands for "no file submitted".
func (d Descriptor) IsEmpty() bool {
	return d.Error == UploadNoFile || (d.Name == "" && d.TmpPath == "" && d.Size == 0 && d.Error == UploadOK)
}

// Extension returns the lower-cased extension of the client file name
// without the leading dot.
func (d Descriptor) Extension() string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(d.Name), "."))
}

// String returns the client file name so descriptors render nicely in messages.
func (d Descriptor) String() string {
	return d.Name
}

// UploadErrorKey returns the message key describing a transport error code,
// e.g. "upload_error_3". It returns an empty string for UploadOK.
func UploadErrorKey(code int) string {
	if code == UploadOK {
		return ""
	}
	return "upload_error_" + strconv.Itoa(code)
}

// FromMap converts a decoded map (JSON body, form decoder output) into a
// Descriptor. Recognized keys are name, size, error and tmp_path (tmp_name is
// accepted as an alias). The second return value is false when the map does
// not look like a file descriptor.
func FromMap(m map[string]any) (Descriptor, bool) {
	if m == nil {
		return Descriptor{}, false
	}
	name, hasName := m["name"]
	if !hasName {
		return Descriptor{}, false
	}

	tmp, hasTmp := m["tmp_path"]
	if !hasTmp {
		tmp, hasTmp = m["tmp_name"]
	}
	size, hasSize := m["size"]
	code, hasCode := m["error"]
	if !hasTmp && !hasSize && !hasCode {
		return Descriptor{}, false
	}

	d := Descriptor{Name: toString(name), TmpPath: toString(tmp)}
	if hasSize {
		n, ok := toInt64(size)
		if !ok {
			return Descriptor{}, false
		}
		d.Size = n
	}
	if hasCode {
		n, ok := toInt64(code)
		if !ok {
			return Descriptor{}, false
		}
		d.Error = int(n)
	}
	return d, true
}

// FromFileHeader builds a Descriptor from a parsed multipart header and the
// path where the caller staged its content. A nil header yields a
// descriptor flagged UploadNoFile.
func FromFileHeader(fh *multipart.FileHeader, tmpPath string) Descriptor {
	if fh == nil {
		return Descriptor{Error: UploadNoFile}
	}
	return Descriptor{
		Name:    filepath.Base(fh.Filename),
		Size:    fh.Size,
		TmpPath: tmpPath,
	}
}

func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		if n == "" {
			return 0, true
		}
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
