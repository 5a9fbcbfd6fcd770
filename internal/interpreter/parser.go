package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Command is one input line split into its name and the words after it.
type Command struct {
	Name string
	Args []string
}

// ParseLine splits a trimmed line on single spaces. Runs of spaces produce
// empty words, so "PLACE  1,2,NORTH" has two arguments.
func ParseLine(line string) Command {
	parts := strings.Split(line, " ")
	return Command{Name: parts[0], Args: parts[1:]}
}

// Placement is a decoded PLACE argument.
type Placement struct {
	X, Y   int
	Facing Direction
}

// placeArgs is the grammar for "X,Y,FACING". The lexer has no whitespace
// rule, so any blank inside the argument is a syntax error.
type placeArgs struct {
	X      string    `parser:"@Int ','"`
	Y      string    `parser:"@Int ','"`
	Facing Direction `parser:"@Ident"`
}

var placeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_]\w*`},
	{Name: "Punct", Pattern: `,`},
})

var placeParser = participle.MustBuild[placeArgs](participle.Lexer(placeLexer))

// ParsePlacement decodes a PLACE argument such as "1,2,NORTH".
func ParsePlacement(arg string) (Placement, error) {
	args, err := placeParser.ParseString("PLACE", arg)
	if err != nil {
		return Placement{}, err
	}
	x, err := strconv.Atoi(args.X)
	if err != nil {
		return Placement{}, fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(args.Y)
	if err != nil {
		return Placement{}, fmt.Errorf("y: %w", err)
	}
	return Placement{X: x, Y: y, Facing: args.Facing}, nil
}
