package generators

import (
	"strconv"
	"strings"

	"github.com/luk036/xnetgo/core"
)

// ClubAttr is the node attribute of the karate club graph naming the
// faction a member sided with after the split.
const ClubAttr = "club"

// zacharyData is the symmetric adjacency matrix of Zachary's karate club,
// from the UCINET data file.
const zacharyData = `
0 1 1 1 1 1 1 1 1 0 1 1 1 1 0 0 0 1 0 1 0 1 0 0 0 0 0 0 0 0 0 1 0 0
1 0 1 1 0 0 0 1 0 0 0 0 0 1 0 0 0 1 0 1 0 1 0 0 0 0 0 0 0 0 1 0 0 0
1 1 0 1 0 0 0 1 1 1 0 0 0 1 0 0 0 0 0 0 0 0 0 0 0 0 0 1 1 0 0 0 1 0
1 1 1 0 0 0 0 1 0 0 0 0 1 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
1 0 0 0 0 0 1 0 0 0 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
1 0 0 0 0 0 1 0 0 0 1 0 0 0 0 0 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
1 0 0 0 1 1 0 0 0 0 0 0 0 0 0 0 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
1 1 1 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
1 0 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 0 1 1
0 0 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1
1 0 0 0 1 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
1 0 0 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
1 1 1 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1
0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 1
0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 1
0 0 0 0 0 1 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
1 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 1
1 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1
0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 1
1 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0
0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 1
0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 0 1 0 1 0 0 1 1
0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 0 1 0 0 0 1 0 0
0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 1 0 0 0 0 0 0 1 0 0
0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 0 0 0 1
0 0 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 1 0 0 0 0 0 0 0 0 1
0 0 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 0 1
0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 0 0 1 0 0 0 0 0 1 1
0 1 0 0 0 0 0 0 1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 1
1 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 0 1 1 0 0 1 0 0 0 1 1
0 0 1 0 0 0 0 0 1 0 0 0 0 0 1 1 0 0 1 0 1 0 1 1 0 0 0 0 0 1 1 1 0 1
0 0 0 0 0 0 0 0 1 1 0 0 0 1 1 1 0 0 1 1 1 0 1 1 0 0 1 1 1 1 1 1 1 0
`

// mrHiMembers are the members who sided with the instructor ("Mr. Hi",
// node 0) after the club split; everyone else followed the officers.
var mrHiMembers = map[int]bool{
	0: true, 1: true, 2: true, 3: true, 4: true, 5: true, 6: true,
	7: true, 8: true, 10: true, 11: true, 12: true, 13: true,
	16: true, 17: true, 19: true, 21: true,
}

// KarateClubGraph returns Zachary's karate club: the 34-member friendship
// network observed by Wayne Zachary before the club split into two
// factions (Zachary, Journal of Anthropological Research 33, 1977).
//
// Each node carries a "club" attribute, either "Mr. Hi" or "Officer",
// naming the faction the member joined. Nodes are "0".."33" and the
// graph holds 78 undirected edges.
func KarateClubGraph() *core.Graph {
	g := core.NewGraph()
	g.Graph().Set("name", "Zachary's Karate Club")

	for i := 0; i < 34; i++ {
		club := "Officer"
		if mrHiMembers[i] {
			club = "Mr. Hi"
		}
		_ = g.AddNode(strconv.Itoa(i), core.WithNodeAttr(ClubAttr, club))
	}

	rows := strings.Split(strings.TrimSpace(zacharyData), "\n")
	for row, line := range rows {
		for col, entry := range strings.Fields(line) {
			if entry == "1" && col > row {
				_, _ = g.AddEdge(strconv.Itoa(row), strconv.Itoa(col))
			}
		}
	}

	return g
}

// FlorentineFamiliesGraph returns Breiger and Pattison's network of
// marriage ties among Renaissance Florentine families (Social Networks 8,
// 1986). 15 nodes, 20 undirected edges.
func FlorentineFamiliesGraph() *core.Graph {
	g := core.NewGraph()
	pairs := [][2]string{
		{"Acciaiuoli", "Medici"},
		{"Castellani", "Peruzzi"},
		{"Castellani", "Strozzi"},
		{"Castellani", "Barbadori"},
		{"Medici", "Barbadori"},
		{"Medici", "Ridolfi"},
		{"Medici", "Tornabuoni"},
		{"Medici", "Albizzi"},
		{"Medici", "Salviati"},
		{"Salviati", "Pazzi"},
		{"Peruzzi", "Strozzi"},
		{"Peruzzi", "Bischeri"},
		{"Strozzi", "Ridolfi"},
		{"Strozzi", "Bischeri"},
		{"Ridolfi", "Tornabuoni"},
		{"Tornabuoni", "Guadagni"},
		{"Albizzi", "Ginori"},
		{"Albizzi", "Guadagni"},
		{"Bischeri", "Guadagni"},
		{"Guadagni", "Lamberteschi"},
	}
	_ = g.AddEdgesFrom(pairs)

	return g
}
