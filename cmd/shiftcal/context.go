package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/tsawler/shiftcal"
	"github.com/tsawler/shiftcal/internal/config"
)

const (
	envConfig = "SHIFTCAL_CONFIG"
	envYear   = "SHIFTCAL_YEAR"
)

type commandContext struct {
	configFlag string
	yearFlag   int
	verbose    bool

	logger *zap.Logger

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext() *commandContext {
	return &commandContext{logger: zap.NewNop()}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path := strings.TrimSpace(c.configFlag)
		if path == "" {
			path = strings.TrimSpace(os.Getenv(envConfig))
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if exists {
			c.logger.Debug("configuration loaded", zap.String("path", resolved))
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

// year resolves the --year flag and SHIFTCAL_YEAR. Zero means the current
// year.
func (c *commandContext) year() (int, error) {
	if c.yearFlag != 0 {
		return c.yearFlag, nil
	}
	v := strings.TrimSpace(os.Getenv(envYear))
	if v == "" {
		return 0, nil
	}
	y, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not a year", envYear, v)
	}
	return y, nil
}

// extractor returns an Extractor for path configured from the loaded
// configuration and flags
func (c *commandContext) extractor(path string) (*shiftcal.Extractor, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	ext := shiftcal.Open(path).
		RowThreshold(cfg.Layout.RowThreshold).
		ClusterMode(cfg.ClusterMode()).
		MinRowLength(cfg.Parse.MinRowLength).
		StripGlyphs(cfg.Parse.StripGlyphs).
		Folding(cfg.Folding()).
		Summary(cfg.Calendar.Summary).
		TimeZone(cfg.Calendar.TimeZone, cfg.Calendar.UTCOffset).
		Language(cfg.OCR.Language).
		PageSegMode(cfg.PageSegMode()).
		Logger(c.logger.With(zap.String("file", path)))

	year, err := c.year()
	if err != nil {
		return nil, err
	}
	if year != 0 {
		ext = ext.Year(year)
	}
	return ext, nil
}
