// Package layout rebuilds the rows of a table from individually positioned
// glyphs.
//
// OCR engines report glyphs in their own traversal order, which for
// hand-filled schedules often jumps between columns. This package recovers
// the visual rows using only geometry:
//
//	positioned := layout.Reduce(tokens)
//	rows := layout.NewRowDetector().Detect(positioned)
//	for _, text := range rows.Texts() {
//	    fmt.Println(text)
//	}
//
// # Row Detection
//
// [RowDetector] sorts tokens by Y and walks them top to bottom. In the
// default [ClusterChain] mode a token joins the current row when its Y is
// less than [RowConfig.Threshold] below the previous token's Y. Because each
// token is compared only with its predecessor, a row that slopes across a
// tilted photo is still grouped, but two rows can also be chained together
// by glyphs that sit between them. [ClusterCentroid] compares with the
// row's mean Y instead.
//
// Tokens within a row are then ordered by X with a stable sort, so glyphs
// sharing an X keep their input order.
package layout
