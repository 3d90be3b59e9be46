package engine

import (
	"context"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 (or less) is one node.
func Perft(pos *chess.Position, depth int) uint64 {
	return perft(pos, depth, nil)
}

func perft(pos *chess.Position, depth int, cache *hashing.ThreadSafeNodeCache) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return uint64(len(moves))
	}

	var hash uint64
	if cache != nil {
		hash = hashing.HashPosition(pos)
		if nodes, ok := cache.Get(hash, depth); ok {
			return nodes
		}
	}

	var nodes uint64
	for _, m := range moves {
		nodes += perft(Apply(pos, m), depth-1, cache)
	}

	if cache != nil {
		cache.Put(hash, depth, nodes)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// PerftDivide returns the node count below each root move, sorted by the
// move's UCI text. The entries sum to Perft(pos, depth) for depth >= 1.
func PerftDivide(pos *chess.Position, depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	var entries []DivideEntry
	for _, m := range LegalMoves(pos) {
		entries = append(entries, DivideEntry{Move: m, Nodes: Perft(Apply(pos, m), depth-1)})
	}
	sortDivide(entries)
	return entries
}

// ParallelPerftDivide is PerftDivide with root moves spread over a worker
// pool. Workers share a node cache; each works on its own position copy.
// Cancelling ctx stops workers from starting further root moves and returns
// ctx.Err().
func ParallelPerftDivide(ctx context.Context, pos *chess.Position, depth, workers int) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, nil
	}
	cache := hashing.NewThreadSafeNodeCache(0)
	moves := LegalMoves(pos)
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Position: pos.Copy(), Move: m, Depth: depth, Index: i}
	}

	results, err := worker.Run(ctx, items, func(ctx context.Context, item worker.WorkItem) worker.Result {
		if err := ctx.Err(); err != nil {
			return worker.Result{Index: item.Index, Err: err}
		}
		next := Apply(item.Position, item.Move)
		return worker.Result{Move: item.Move, Index: item.Index, Nodes: perft(next, item.Depth-1, cache)}
	}, worker.WithWorkers(workers))
	if err != nil {
		return nil, err
	}

	entries := make([]DivideEntry, len(results))
	for i, r := range results {
		entries[i] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	sortDivide(entries)
	return entries, nil
}

// SumDivide totals the node counts of a divide.
func SumDivide(entries []DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}

func sortDivide(entries []DivideEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.UCI() < entries[j].Move.UCI()
	})
}
