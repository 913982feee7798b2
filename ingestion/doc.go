// Package ingestion loads pre-segmented vehicle manuals into the
// document store and computes section embeddings.
//
// The Pipeline type manages the loading workflow:
//   - Parsing manual JSON into a validated document
//   - Installing the document as its collection's active document
//   - Reusing persisted embeddings when the document is unchanged
//   - Embedding sections asynchronously on a worker pool otherwise
//
// Embedding errors are logged but do not fail the load; a document
// without vectors is still searchable with lexical scoring only.
package ingestion
