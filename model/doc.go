// Package model defines the data shared by every stage of shift extraction.
//
// # Tokens
//
// A [Token] is one glyph recognized by an OCR engine, together with the
// [Quad] the engine reported for it. Token loaders (packages vision, hocr and
// ocr) produce tokens in document order; the layout package reduces them to
// [PositionedToken] values and groups them into rows.
//
// # Shifts
//
// A [Shift] is the final, calendar-ready record:
//
//	s := model.Shift{
//	    Summary:       "バイト",
//	    StartDateTime: "2025-08-01T17:00:00+09:00:00",
//	    EndDateTime:   "2025-08-01T21:30:00+09:00:00",
//	    TimeZone:      "Asia/Tokyo",
//	}
//	fields := s.Fields() // summary, start_datetime, end_datetime, timezone
//
// # Geometry
//
//   - [Point] - 2D point in image pixel space
//   - [BBox] - axis-aligned box with Y growing downward
//   - [Quad] - four-corner glyph outline with [Quad.Centroid]
//
// # Errors
//
// [ErrMalformedInput] and [ErrInvalidDateTime] are sentinel errors; callers
// test for them with errors.Is.
package model
