// Package obslog is the engine's structured-logging surface: log/slog with
// a custom level for one tick of the AND/OR work-queue loop, a Trace
// helper, and a go-pretty/v6 table dump of a VC store for debugging.
//
// Grounded on core/util.go's LevelTrace/LevelWaveform custom slog levels,
// its Trace helper, and its PrintState table rendering via
// github.com/jedib0t/go-pretty/v6/table.
package obslog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sarchlab/benzene/vcstore"
)

// LevelFixedPoint is logged once per work-queue pop processed by the VC
// builder's fixed point, mirroring core/util.go's LevelTrace/LevelWaveform
// custom levels (one level below slog.LevelInfo, above LevelTrace so a
// caller can enable work-queue tracing without enabling every Trace call).
const LevelFixedPoint slog.Level = slog.LevelInfo - 1

// LevelTrace is one tick finer than LevelFixedPoint, for per-combination
// detail (an AND or OR attempt), following the same "finer than Info,
// coarser than Debug" convention core/util.go uses for LevelTrace.
const LevelTrace slog.Level = slog.LevelInfo - 2

// Trace logs msg at LevelTrace, matching core.Trace's role as the engine's
// catch-all fine-grained log call.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// FixedPoint logs msg at LevelFixedPoint, for one work-queue pop.
func FixedPoint(msg string, args ...any) {
	slog.Log(context.Background(), LevelFixedPoint, msg, args...)
}

// DumpStore renders every pair's FULL/SEMI list sizes as a table to w, the
// way core/util.go's PrintState renders register/buffer tables -- a
// debugging aid, not part of the engine's query surface.
func DumpStore(w io.Writer, store *vcstore.Store) {
	pairs := store.Pairs()
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].X != pairs[j].X {
			return pairs[i].X < pairs[j].X
		}
		return pairs[i].Y < pairs[j].Y
	})

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("VC Store")
	t.AppendHeader(table.Row{"X", "Y", "FULLs", "SEMIs"})
	for _, p := range pairs {
		fullLen, semiLen := 0, 0
		if full := store.GetFull(p.X, p.Y); full != nil {
			fullLen = full.Len()
		}
		if semi := store.GetSemi(p.X, p.Y); semi != nil {
			semiLen = semi.Len()
		}
		t.AppendRow(table.Row{p.X, p.Y, fullLen, semiLen})
	}
	fmt.Fprintln(w, t.Render())
}
