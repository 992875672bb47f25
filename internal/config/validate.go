package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/tsawler/shiftcal/layout"
	"github.com/tsawler/shiftcal/ocr"
	"github.com/tsawler/shiftcal/shift"
)

var offsetPattern = regexp.MustCompile(`^(Z|[+-]\d{2}:\d{2}(:\d{2})?)?$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validateParse(); err != nil {
		return err
	}
	if err := c.validateCalendar(); err != nil {
		return err
	}
	return c.validateOCR()
}

func (c *Config) validateLayout() error {
	if c.Layout.RowThreshold <= 0 {
		return errors.New("layout.row_threshold must be positive")
	}
	if _, ok := layout.ParseClusterMode(c.Layout.Clustering); !ok {
		return fmt.Errorf("layout.clustering must be \"chain\" or \"centroid\", got %q", c.Layout.Clustering)
	}
	return nil
}

func (c *Config) validateParse() error {
	if c.Parse.MinRowLength < 0 {
		return errors.New("parse.min_row_length must not be negative")
	}
	if _, err := shift.ParseFolding(c.Parse.Folding); err != nil {
		return fmt.Errorf("parse.folding: %w", err)
	}
	return nil
}

func (c *Config) validateCalendar() error {
	if c.Calendar.Summary == "" {
		return errors.New("calendar.summary must be set")
	}
	if c.Calendar.TimeZone == "" {
		return errors.New("calendar.timezone must be set")
	}
	if !offsetPattern.MatchString(c.Calendar.UTCOffset) {
		return fmt.Errorf("calendar.utc_offset %q must look like +09:00 or +09:00:00", c.Calendar.UTCOffset)
	}
	return nil
}

func (c *Config) validateOCR() error {
	if _, err := ocr.ParsePageSegMode(c.OCR.PageSegMode); err != nil {
		return fmt.Errorf("ocr.page_seg_mode: %w", err)
	}
	return nil
}

// ClusterMode returns the configured clustering mode. It assumes the
// configuration has been validated.
func (c *Config) ClusterMode() layout.ClusterMode {
	mode, _ := layout.ParseClusterMode(c.Layout.Clustering)
	return mode
}

// Folding returns the configured width folding. It assumes the
// configuration has been validated.
func (c *Config) Folding() shift.Folding {
	f, _ := shift.ParseFolding(c.Parse.Folding)
	return f
}

// PageSegMode returns the configured Tesseract page segmentation mode. It
// assumes the configuration has been validated.
func (c *Config) PageSegMode() ocr.PageSegMode {
	m, _ := ocr.ParsePageSegMode(c.OCR.PageSegMode)
	return m
}
