// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package attach

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/iuristatech/iurista-tui/internal/util"
)

// =============================================================================
// VALIDATION
// =============================================================================

// MaxFileSize is the largest attachment the assistant accepts.
const MaxFileSize = 10 * 1024 * 1024

// Validation errors carry user-facing Spanish text; the UI shows them
// verbatim.
var (
	ErrUnsupportedType = errors.New("Tipo de archivo no soportado. Use PDF, DOCX o TXT.")
	ErrTooLarge        = errors.New("El archivo es demasiado grande. Máximo 10MB.")
	ErrNotFound        = errors.New("No se encontró el archivo.")
)

// allowedExtensions are the attachment types the assistant understands.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// Attachment is a validated file ready to upload or extract.
type Attachment struct {
	Path     string
	Filename string
	Size     int64
}

// DisplaySize formats the attachment size for the composer chip.
func (a Attachment) DisplaySize() string {
	return util.FormatFileSize(a.Size)
}

// Ext returns the lowercase extension including the dot.
func (a Attachment) Ext() string {
	return strings.ToLower(filepath.Ext(a.Filename))
}

// Validate checks that the file at path exists, has an accepted extension,
// and fits the size limit. Extension is checked before size so the user
// hears about the more fundamental problem first.
func Validate(path string) (*Attachment, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, ErrNotFound
	}

	filename := filepath.Base(path)
	if !allowedExtensions[strings.ToLower(filepath.Ext(filename))] {
		return nil, ErrUnsupportedType
	}
	if info.Size() > MaxFileSize {
		return nil, ErrTooLarge
	}

	return &Attachment{
		Path:     path,
		Filename: filename,
		Size:     info.Size(),
	}, nil
}

// Open returns a reader over the attachment content for upload.
func (a Attachment) Open() (*os.File, error) {
	return os.Open(a.Path)
}
