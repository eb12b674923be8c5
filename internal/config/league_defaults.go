package config

import "keeper-service/internal/domain/teams"

// DefaultLeagueTables returns the compiled-in league configuration. The
// catalog order is the dropdown order; the id map translates the upstream
// numeric team ids to the stable internal keys.
func DefaultLeagueTables() LeagueTables {
	return LeagueTables{
		Catalog: teams.Catalog{
			{Key: "mahoms", Name: "Me And My Mahomies (Connor Flaherty)"},
			{Key: "mitchell", Name: "Team Mitchell (Timothy Mitchell)"},
			{Key: "devonta", Name: "DeVonta Hurts You (Joe Costa)"},
			{Key: "cmb3dan", Name: "CMB 3-Dan (Dan S)"},
			{Key: "bumcrumbs", Name: "Bum Crumbs (Phat Johnson)"},
			{Key: "stamford", Name: "Stamford Mackie (Scott Mackie)"},
			{Key: "seahawks", Name: "Seattle Seahawks (Dan Costa)"},
			{Key: "metzler", Name: "The Arm of the Armadillos (Andrew Flaherty)"},
			{Key: "numbnuts", Name: "Numbnutsss (Greg Costa)"},
			{Key: "kenney", Name: "Team Kenney (Brian Kenney)"},
		},
		IDMap: teams.IDMap{
			1:  "seahawks",
			2:  "numbnuts",
			3:  "stamford",
			4:  "cmb3dan",
			5:  "devonta",
			6:  "bumcrumbs",
			7:  "mitchell",
			8:  "metzler",
			9:  "kenney",
			10: "mahoms",
		},
		// Players kept last season; they have hit the one-retention cap and
		// cannot be kept again.
		SeasonsKept: map[int]int{
			2976212: 1, // Stefon Diggs
			3918298: 1, // Josh Allen
			3116406: 1, // Tyreek Hill
			4241389: 1, // CeeDee Lamb
			4429795: 1, // Jahmyr Gibbs
			4569618: 1, // Garrett Wilson
			4239996: 1, // Travis Etienne Jr.
			3054850: 1, // Alvin Kamara
			4427366: 1, // Breece Hall
			3045147: 1, // James Conner
			4430737: 1, // Kyren Williams
			4036378: 1, // Jordan Love
			4426515: 1, // Puka Nacua
			4430027: 1, // Sam LaPorta
			4035676: 1, // Zack Moss
			4430878: 1, // Jaxon Smith-Njigba
			4258173: 1, // Nico Collins
			4428557: 1, // Tyjae Spears
			4429084: 1, // Anthony Richardson
			4429160: 1, // De'Von Achane
			4428331: 1, // Rashee Rice
			4569987: 1, // Jaylen Warren
		},
	}
}
