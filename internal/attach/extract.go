// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package attach

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

// =============================================================================
// LOCAL EXTRACTION
// =============================================================================

// ErrNoLocalExtractor means the file type needs the backend to extract text.
var ErrNoLocalExtractor = errors.New("Este tipo de archivo requiere conexión con el servidor para procesarse.")

// maxContextRunes bounds the document context attached to a chat message so
// a large file does not drown the conversation.
const maxContextRunes = 12000

// ExtractText reads the attachment content in-process. Used in local-only
// mode where no backend is available; TXT and PDF are supported, DOCX needs
// the server.
func (a Attachment) ExtractText() (string, error) {
	switch a.Ext() {
	case ".txt":
		return a.extractTXT()
	case ".pdf":
		return a.extractPDF()
	default:
		return "", ErrNoLocalExtractor
	}
}

// extractTXT reads the file as UTF-8, falling back to Windows-1252 for
// legacy documents exported from office suites.
func (a Attachment) extractTXT() (string, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err == nil {
			data = decoded
		}
	}
	return clampContext(string(data)), nil
}

// extractPDF pulls the plain text layer out of the PDF. Scanned documents
// with no text layer yield an empty string, which callers treat as an
// extraction failure.
func (a Attachment) extractPDF() (string, error) {
	f, reader, err := pdf.Open(a.Path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, textReader); err != nil {
		return "", err
	}
	return clampContext(buf.String()), nil
}

// clampContext trims surrounding whitespace and caps the extracted text.
func clampContext(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) > maxContextRunes {
		return string(runes[:maxContextRunes])
	}
	return text
}
