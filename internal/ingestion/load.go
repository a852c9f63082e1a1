package ingestion

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-extractor/internal/types"
)

// SupportedExtensions lists the file extensions LoadFile understands
var SupportedExtensions = []string{".htm", ".html", ".md", ".pdf", ".txt"}

// IsSupported reports whether path has an extension LoadFile can read
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	i := sort.SearchStrings(SupportedExtensions, ext)
	return i < len(SupportedExtensions) && SupportedExtensions[i] == ext
}

// LoadFile reads a resume file and returns its normalized text
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &LoadError{Path: path, Message: "file not found", Cause: err}
		}
		return "", &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".txt", ".md":
		return Normalize(data), nil
	case ".pdf":
		text, err := pdfText(data)
		if err != nil {
			return "", &LoadError{Path: path, Message: "failed to extract PDF text", Cause: err}
		}
		return NormalizeString(text), nil
	case ".html", ".htm":
		text, err := htmlText(data)
		if err != nil {
			return "", &LoadError{Path: path, Message: "failed to parse HTML", Cause: err}
		}
		return NormalizeString(text), nil
	default:
		return "", &LoadError{Path: path, Message: "cannot load", Cause: &UnsupportedFormatError{Ext: ext}}
	}
}

// LoadDocument loads path and wraps the text with metadata into a Document
func LoadDocument(path string, entities []types.Entity) (*types.Document, error) {
	text, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	doc := types.NewDocument(text, entities)
	doc.Meta = NewMetadata(path, text)
	return doc, nil
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// block-level elements end a line in the extracted text
const htmlBlockSelector = "p, div, li, br, tr, h1, h2, h3, h4, h5, h6, section, article, header, footer, table, ul, ol"

func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("td, th").AfterHtml(" ")
	doc.Find(htmlBlockSelector).AfterHtml("\n")

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}
	return body.Text(), nil
}

// LoadEntities reads tagger output: a JSON array of {text, start, end, label, confidence}
func LoadEntities(path string) ([]types.Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read entities", Cause: err}
	}
	entities := []types.Entity{}
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid entities JSON", Cause: err}
	}
	sort.SliceStable(entities, func(i, j int) bool { return entities[i].Start < entities[j].Start })
	return entities, nil
}
