// Copyright Asteria Studio, 2026. All rights reserved.

// Package pipeline is the page-processing core for Asteria Studio.
// The real processing stages are not built yet; the package exposes the
// placeholder surface the host application integrates against, so the
// contract (page ID in, status message out) is stable before the stages land.
package pipeline

import (
	"fmt"
	"io"

	"github.com/asteria-studio/pipeline-core/pkg/types"
)

// statusPrefix is the fixed leading text of every stub status message.
// The host application matches on this prefix to detect placeholder output.
const statusPrefix = "Processing not yet implemented for "

// ProcessPageStub returns the placeholder status message for pageID.
// The result always starts with the fixed prefix and contains pageID
// verbatim. The call is pure: no I/O, no state, and it cannot fail —
// an empty or arbitrary pageID is interpolated as-is.
func ProcessPageStub(pageID string) string {
	return statusPrefix + pageID
}

// ProcessPages runs the stub processor over pageIDs in order, writing one
// status line per page to w followed by a summary line. It returns the
// per-page results for callers that want structured output.
func ProcessPages(pageIDs []string, w io.Writer) []types.PageResult {
	results := make([]types.PageResult, len(pageIDs))
	for i, id := range pageIDs {
		msg := ProcessPageStub(id)
		results[i] = types.PageResult{PageID: id, Message: msg}
		fmt.Fprintln(w, msg)
	}
	fmt.Fprintf(w, "\nBatch summary: %d pages\n", len(results))
	return results
}
