package shiftcal

import (
	"bytes"
	"fmt"
	"os"

	"github.com/tsawler/shiftcal/format"
	"github.com/tsawler/shiftcal/hocr"
	"github.com/tsawler/shiftcal/layout"
	"github.com/tsawler/shiftcal/model"
	"github.com/tsawler/shiftcal/ocr"
	"github.com/tsawler/shiftcal/shift"
	"github.com/tsawler/shiftcal/vision"
	"go.uber.org/zap"
)

// Extractor provides a fluent interface for extracting shifts from OCR
// results. Each configuration method returns a new Extractor instance, making
// it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source (exactly one is used)
	filename  string
	data      []byte
	hasData   bool
	tokens    []model.Token
	hasTokens bool

	format format.Format

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor. Source slices are never mutated
// after construction, so they are shared.
func (e *Extractor) clone() *Extractor {
	newExt := *e
	return &newExt
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Year places every shift in the given year instead of the current one.
//
// Example:
//
//	shifts, _, err := shiftcal.Open("response.json").Year(2025).Shifts()
func (e *Extractor) Year(year int) *Extractor {
	newExt := e.clone()
	if year < 1 || year > 9999 {
		newExt.err = fmt.Errorf("year %d out of range", year)
		return newExt
	}
	newExt.options.clock = shift.FixedYear(year)
	return newExt
}

// Clock sets the clock the current year is read from. The clock is read
// once per terminal operation.
func (e *Extractor) Clock(clock shift.Clock) *Extractor {
	newExt := e.clone()
	if clock == nil {
		clock = shift.SystemClock
	}
	newExt.options.clock = clock
	return newExt
}

// RowThreshold sets the vertical gap, in pixels, at which a new row starts.
//
// Example:
//
//	shifts, _, err := shiftcal.Open("response.json").RowThreshold(14).Shifts()
func (e *Extractor) RowThreshold(px float64) *Extractor {
	newExt := e.clone()
	if px <= 0 {
		newExt.err = fmt.Errorf("row threshold must be positive, got %v", px)
		return newExt
	}
	newExt.options.rows.Threshold = px
	return newExt
}

// CentroidClustering compares each token with the mean Y of the row being
// built instead of with the previous token. This prevents neighbouring rows
// from being chained together on tilted photos, at the cost of splitting
// rows that slope more than the threshold.
func (e *Extractor) CentroidClustering() *Extractor {
	newExt := e.clone()
	newExt.options.rows.Mode = layout.ClusterCentroid
	return newExt
}

// ClusterMode sets the row clustering mode explicitly.
func (e *Extractor) ClusterMode(mode layout.ClusterMode) *Extractor {
	newExt := e.clone()
	newExt.options.rows.Mode = mode
	return newExt
}

// MinRowLength sets the minimum row length, in characters, for a row to be
// parsed.
func (e *Extractor) MinRowLength(n int) *Extractor {
	newExt := e.clone()
	if n < 0 {
		newExt.err = fmt.Errorf("minimum row length must not be negative, got %d", n)
		return newExt
	}
	newExt.options.minRowLength = n
	return newExt
}

// StripGlyphs sets the characters deleted from every row before parsing.
func (e *Extractor) StripGlyphs(chars string) *Extractor {
	newExt := e.clone()
	newExt.options.stripGlyphs = chars
	return newExt
}

// Folding sets which full-width characters are narrowed before parsing.
// The default, shift.FoldDigits, only maps "０"-"９" to ASCII digits.
// shift.FoldWidth also folds punctuation such as "／" and half-width kana.
//
// Example:
//
//	shifts, _, err := shiftcal.Open("response.json").Folding(shift.FoldNone).Shifts()
func (e *Extractor) Folding(mode shift.Folding) *Extractor {
	newExt := e.clone()
	if mode < shift.FoldNone || mode > shift.FoldWidth {
		newExt.err = fmt.Errorf("unknown folding mode %d", int(mode))
		return newExt
	}
	newExt.options.folding = mode
	return newExt
}

// Summary sets the event title given to every shift.
func (e *Extractor) Summary(summary string) *Extractor {
	newExt := e.clone()
	newExt.options.summary = summary
	return newExt
}

// TimeZone sets the IANA zone name and the UTC offset literal appended to
// every date-time. The two are not checked against each other.
//
// Example:
//
//	shifts, _, err := shiftcal.Open("response.json").TimeZone("Asia/Tokyo", "+09:00:00").Shifts()
func (e *Extractor) TimeZone(name, offset string) *Extractor {
	newExt := e.clone()
	if name == "" {
		newExt.err = fmt.Errorf("time zone name must not be empty")
		return newExt
	}
	newExt.options.timeZone = name
	newExt.options.offset = offset
	return newExt
}

// Language sets the Tesseract language used when the input is an image.
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.language = lang
	return newExt
}

// PageSegMode sets the Tesseract page segmentation mode used when the input
// is an image. Schedules photographed as a table often recognize better
// with ocr.PageSegSparseText.
func (e *Extractor) PageSegMode(mode ocr.PageSegMode) *Extractor {
	newExt := e.clone()
	if !mode.Valid() {
		newExt.err = fmt.Errorf("unknown page segmentation mode %d", int(mode))
		return newExt
	}
	newExt.options.pageSegMode = mode
	return newExt
}

// Logger sets a logger that receives one debug entry per discarded row and
// a summary per run. By default nothing is logged.
func (e *Extractor) Logger(logger *zap.Logger) *Extractor {
	newExt := e.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newExt.options.logger = logger
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Tokens returns the glyph tokens of the input in document order.
func (e *Extractor) Tokens() ([]model.Token, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.loadTokens()
}

// Layout reconstructs the rows of the input.
//
// Example:
//
//	l, err := shiftcal.Open("response.json").Layout()
//	for _, row := range l.Rows {
//	    fmt.Println(row.Index, row.Text())
//	}
func (e *Extractor) Layout() (*layout.RowLayout, error) {
	tokens, err := e.Tokens()
	if err != nil {
		return nil, err
	}
	positioned := layout.Reduce(tokens)
	return layout.NewRowDetectorWithConfig(e.options.rows).Detect(positioned), nil
}

// Rows returns the text of every reconstructed row, top to bottom, before
// any filtering.
func (e *Extractor) Rows() ([]string, error) {
	l, err := e.Layout()
	if err != nil {
		return nil, err
	}
	return l.Texts(), nil
}

// Outcomes parses every reconstructed row and returns one outcome per row.
func (e *Extractor) Outcomes() ([]shift.Outcome, error) {
	_, outcomes, err := e.parse()
	return outcomes, err
}

// parse reconstructs the rows and parses them
func (e *Extractor) parse() (*layout.RowLayout, []shift.Outcome, error) {
	l, err := e.Layout()
	if err != nil {
		return nil, nil, err
	}
	return l, e.options.parser().Parse(l.Texts()), nil
}

// Shifts extracts the shifts of the input, in row order.
//
// Returns the shifts, warnings for rows that were discarded or look
// suspicious, and an error if the input could not be read at all. A
// malformed recognition result fails with an error wrapping
// model.ErrMalformedInput; individual bad rows never fail the run. The
// result may be empty when every row was noise.
//
// Example:
//
//	shifts, warnings, err := shiftcal.Open("response.json").Shifts()
//	if errors.Is(err, model.ErrMalformedInput) {
//	    // tell the user the photo could not be read
//	}
func (e *Extractor) Shifts() ([]model.Shift, []Warning, error) {
	l, outcomes, err := e.parse()
	if err != nil {
		return nil, nil, err
	}

	log := e.options.logger
	for i, o := range outcomes {
		if o.Discarded() {
			log.Debug("row discarded",
				zap.Int("row", i),
				zap.String("text", o.Row),
				zap.Stringer("reason", o.Reason),
				zap.Error(o.Err))
		}
	}

	shifts := shift.Shifts(outcomes)
	warnings := outcomeWarnings(outcomes)
	log.Info("shifts extracted",
		zap.String("source", e.source()),
		zap.Int("tokens", l.TokenCount()),
		zap.Int("rows", len(outcomes)),
		zap.Int("shifts", len(shifts)),
		zap.Int("discarded", Discarded(warnings)))

	return shifts, warnings, nil
}

// ============================================================================
// Loading
// ============================================================================

// source names the input for log entries
func (e *Extractor) source() string {
	switch {
	case e.hasTokens:
		return "tokens"
	case e.hasData:
		return "bytes"
	default:
		return e.filename
	}
}

// loadTokens reads the configured source and converts it into tokens
func (e *Extractor) loadTokens() ([]model.Token, error) {
	if e.hasTokens {
		return append([]model.Token(nil), e.tokens...), nil
	}

	data := e.data
	if !e.hasData {
		if e.filename == "" {
			return nil, fmt.Errorf("no input specified")
		}
		b, err := os.ReadFile(e.filename)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		data = b
	}

	f := e.format
	if f == format.Unknown {
		f = format.DetectFromMagic(data)
	}

	switch {
	case f == format.VisionJSON:
		resp, err := vision.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return resp.Tokens()

	case f == format.HOCR:
		return hocr.Parse(bytes.NewReader(data))

	case f.IsImage():
		return e.recognize(data)

	default:
		return nil, fmt.Errorf("unsupported input format: %s", f)
	}
}

// recognize runs OCR on image data
func (e *Extractor) recognize(data []byte) ([]model.Token, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create OCR client: %w", err)
	}
	defer client.Close()

	if e.options.language != "" {
		if err := client.SetLanguage(e.options.language); err != nil {
			return nil, fmt.Errorf("failed to set OCR language: %w", err)
		}
	}
	if err := client.SetPageSegMode(e.options.pageSegMode); err != nil {
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}

	tokens, err := client.RecognizeTokens(data)
	if err != nil {
		return nil, fmt.Errorf("failed to recognize image: %w", err)
	}
	return tokens, nil
}
