//go:build ocr

// Package ocr recognizes schedule photos with the Tesseract OCR engine via
// gosseract and returns one token per recognized character.
//
// This package requires Tesseract and its Japanese traineddata. On macOS:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-jpn
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/tsawler/shiftcal/model"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client recognizing DefaultLanguage.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	if err := client.SetLanguage(DefaultLanguage); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeTokens performs OCR on image data and returns one token per
// recognized symbol, in the engine's reading order. Any format accepted by
// NormalizeImage may be passed.
func (c *Client) RecognizeTokens(imageData []byte) ([]model.Token, error) {
	png, _, err := NormalizeImage(imageData)
	if err != nil {
		return nil, err
	}
	if err := c.client.SetImageFromBytes(png); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_SYMBOL)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	tokens := make([]model.Token, 0, len(boxes))
	for _, b := range boxes {
		text := strings.TrimSpace(b.Word)
		if text == "" {
			continue
		}
		tokens = append(tokens, model.Token{Text: text, Quad: rectQuad(b.Box)})
	}
	return tokens, nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "jpn+eng").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	if !mode.Valid() {
		return fmt.Errorf("unknown page segmentation mode %d", int(mode))
	}
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
