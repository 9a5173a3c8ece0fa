// Package pipeline runs a crawl as a sequence of steps.
//
// A crawl goes through the stages discover, dedupe, crawl, sort and export.
// Each stage is a Step that receives the current model.Run and fills in
// its part: the viable homepage links, the canonical article URLs, the
// extracted records, their final order, and finally the export file.
//
// The pipeline checks for cancellation between steps, logs each step, and
// stops at the first step that fails.
package pipeline
