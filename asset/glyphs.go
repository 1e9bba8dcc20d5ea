// Package asset holds the text glyphs drawn for every entity kind and banner
package asset

// Tank is the player's label, laser barrel on the right
var Tank = []string{
	"    // ",
	"BBBBBB ",
	"CCCCCCC",
}

// MartianSmall is the 3x3 martian style
var MartianSmall = []string{
	" A ",
	"(0)",
	"III",
}

// MartianLarge is the 9x7 martian style
var MartianLarge = []string{
	"    A    ",
	"   AAA   ",
	`  | " |  `,
	"__| O |__",
	"   Y Y   ",
	"   | |   ",
	"   | |   ",
}

// MartianStyles lists the styles the spawner picks from
var MartianStyles = [][]string{MartianSmall, MartianLarge}

var (
	Laser  = []string{"/"}
	Bomb   = []string{"|"}
	Rocket = []string{
		" A ",
		"( )",
		"( )",
	}
)

// YouLose is shown when the tank is destroyed
var YouLose = []string{
	`/\    /\ `,
	`\/    \/ `,
	`  /--\   `,
	`  |\/|   `,
	`  |/\|   `,
	"   --    ",
	"YOU LOSE ",
}

// GameWin is shown when the wave is cleared
var GameWin = []string{"GAME WIN ;D"}
