// Package dataset holds the fixed example graph the bfsroute driver searches:
// 21 numbered cities joined by roads whose weights are distances.
package dataset

import "github.com/katalvlaran/bfsroute/core"

// Default endpoints of the example search.
const (
	DefaultStart = "1"
	DefaultGoal  = "11"
)

// road is one listed (neighbor, weight) pair.
type road struct {
	to string
	w  float64
}

// cityOrder fixes the insertion order of the literal table below.
var cityOrder = []string{
	"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
	"11", "12", "13", "14", "15", "16", "17", "18", "19", "20", "21",
}

// roads is the adjacency table. Every road is listed from both ends except
// 21→16, so city 21 can leave but cannot be entered.
var roads = map[string][]road{
	"1":  {{"2", 219}, {"3", 488}, {"4", 314}, {"5", 462}},
	"2":  {{"1", 219}, {"6", 287}, {"7", 365}},
	"3":  {{"1", 488}, {"4", 334}, {"8", 226}, {"9", 217}},
	"4":  {{"1", 314}, {"3", 334}, {"5", 192}},
	"5":  {{"1", 462}, {"4", 192}, {"8", 424}},
	"6":  {{"2", 287}, {"10", 354}},
	"7":  {{"2", 365}, {"11", 214}, {"12", 354}, {"9", 219}},
	"8":  {{"3", 226}, {"5", 424}, {"14", 291}},
	"9":  {{"3", 217}, {"7", 219}, {"15", 211}, {"16", 222}, {"20", 460}, {"14", 360}},
	"10": {{"6", 354}, {"11", 124}},
	"11": {{"7", 214}, {"10", 124}, {"12", 146}},
	"12": {{"7", 354}, {"11", 146}, {"13", 153}},
	"13": {{"12", 153}, {"19", 188}, {"20", 192}},
	"14": {{"8", 291}, {"9", 360}, {"15", 164}, {"16", 148}, {"17", 68}},
	"15": {{"9", 211}, {"14", 164}},
	"16": {{"9", 222}, {"14", 148}, {"17", 110}},
	"17": {{"14", 68}, {"16", 110}, {"18", 381}},
	"18": {{"17", 381}, {"20", 148}},
	"19": {{"13", 188}, {"20", 112}},
	"20": {{"9", 460}, {"13", 192}, {"18", 148}, {"19", 112}},
	"21": {{"16", 344}},
}

// Cities builds a fresh directed, weighted graph from the adjacency table.
// Each call returns an independent graph.
func Cities() *core.Graph {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for _, from := range cityOrder {
		for _, r := range roads[from] {
			// The table is static and valid; AddEdge cannot fail on it.
			if err := g.AddEdge(from, r.to, r.w); err != nil {
				panic("dataset: " + err.Error())
			}
		}
	}

	return g
}
