// Package shift parses reconstructed schedule rows into calendar-ready
// shifts.
//
// Each row passes through four stages:
//
//   - [Filter] drops rows shorter than [DefaultMinRowLength] characters
//   - [Cleaner] deletes glyphs OCR invents from ruling lines ("I", "|")
//   - [Extract] finds "8/1金17時00分21時30分"-style entries
//   - [Builder] validates the fields and formats ISO-8601 date-times
//
// [Parser] chains the stages. It never fails as a whole; a row that cannot
// be parsed yields an [Outcome] with a discard [Reason]:
//
//	p := shift.NewParser(shift.FixedYear(2025))
//	outcomes := p.Parse(rows)
//	shifts := shift.Shifts(outcomes)
//
// # Dates
//
// Schedules carry month and day only. The year is read once per run from
// a [Clock], so tests can fix it with [FixedYear]. The configured offset
// string is appended to each date-time verbatim.
package shift
