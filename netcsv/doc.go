// Package netcsv is the I/O collaborator of the counting core: it reads
// labeled adjacency matrices from CSV and renders plain-text triad reports.
//
// What:
//
//   - ReadAdjacency / ReadAdjacencyFile: parse a CSV whose header row names
//     the nodes (cells after the first) and whose data rows carry one row of
//     edge weights each (first cell is the row label, ignored).
//   - WriteReport / WriteReportFile: render a Counts census in the classic
//     banner format (stable/unstable summary plus the four raw buckets).
//
// Cell policy:
//
//   - Lenient (default): an unparseable or missing cell is 0 — no edge.
//     This mirrors the historical ingestion behavior.
//   - Strict (WithStrictCells): the first unparseable cell aborts with
//     ErrParse naming its row and column. Prefer strict for curated data.
//
// Shape policy:
//
//   - The header fixes n. Data rows shorter than n zero-fill; cells and
//     rows beyond n are ignored. The diagonal is always zeroed (no
//     self-loops).
//
// Errors:
//
//   - ErrParse — malformed CSV structure or (strict mode) a bad cell.
//   - ErrIO — file-system or stream failures.
//   - ErrEmptyInput — no header row at all.
//   - ErrNoLabels — a header with no node columns.
//
// All four are distinct sentinels matched via errors.Is; the counting core
// itself never fails, so every error a pipeline sees originates here.
package netcsv
