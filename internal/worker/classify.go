package worker

import (
	"sort"

	"github.com/lgbarn/chessmoves-go/internal/engine"
	"github.com/lgbarn/chessmoves-go/internal/notation"
)

// Classify is the ProcessFunc used for batch classification. Every call
// decodes its own position, so workers share only the edge table.
func Classify(item WorkItem, edges *engine.EdgeTable) ProcessResult {
	result := ProcessResult{FEN: item.FEN, Index: item.Index}

	pos, err := notation.DecodeFEN(item.FEN)
	if err != nil {
		result.Error = err
		return result
	}

	_, moves := engine.GenerateMoves(&pos, pos.ToMove, edges)
	for _, m := range moves {
		if engine.LeavesKingSafe(&pos, moves, m, edges) {
			result.MoveCount++
		}
	}
	result.InCheck = engine.SideInCheck(&pos, pos.ToMove, edges)
	result.Outcome = engine.Classify(&pos, edges)
	return result
}

// CollectOrdered drains the pool's results and returns them sorted by index.
// It returns once the result channel is closed.
func CollectOrdered(p *Pool) []ProcessResult {
	var results []ProcessResult
	for r := range p.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
