package bot

import (
	"github.com/iamasit07/4-in-a-row/solver/internal/domain"
)

// Run weights indexed by min(run length, 4). The opponent's runs weigh
// twice as much as our own.
var (
	selfWeights  = [5]int{0, 1, 10, 100, 1000}
	enemyWeights = [5]int{0, 2, 20, 200, 2000}
)

// Evaluate scores b from ref's point of view: positive is good for ref.
// Every maximal run of pieces on every row, column and diagonal adds its
// weight; the difference is multiplied by depth so that the same position
// reached earlier in the search counts for more.
func Evaluate(b domain.Board, ref domain.Side, depth int) int {
	own, other := ref.Cell(), ref.Opponent().Cell()
	selfScore, enemyScore := 0, 0

	for _, dir := range domain.Directions {
		for _, line := range domain.LinesFor(dir) {
			for _, run := range domain.RunLengths(&b, line, own) {
				selfScore += selfWeights[min(run, len(selfWeights)-1)]
			}
			for _, run := range domain.RunLengths(&b, line, other) {
				enemyScore += enemyWeights[min(run, len(enemyWeights)-1)]
			}
		}
	}

	return (selfScore - enemyScore) * depth
}
