package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/color"
)

var isTerminal = term.IsTerminal(int(os.Stdout.Fd()))

// swatch returns a small ANSI truecolor block showing the color, or the
// empty string when stdout is not a terminal.
func swatch(c color.Color) string {
	if !isTerminal {
		return ""
	}
	rgba := c.RGBA32(1)
	r := rgba >> 24 & 0xff
	g := rgba >> 16 & 0xff
	b := rgba >> 8 & 0xff
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

func main() {
	spaceName := flag.String("s", "", "convert the color to the named color space (e.g. RGB, Lab, OkLch)")
	withAlpha := flag.Bool("a", false, "include the opacity channel in the output")
	all := flag.Bool("all", false, "print the color in every picker color space")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Printf("Usage: %s [options] COLOR\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	c, err := color.Parse(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing color %q: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	if *withAlpha {
		c.EnableOpacity(true)
	}

	if *spaceName != "" {
		space := color.DefaultManager.FindName(*spaceName)
		if space == nil {
			fmt.Fprintf(os.Stderr, "Error: unknown color space %q\n", *spaceName)
			os.Exit(1)
		}
		conv, ok := c.Converted(space)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: can not convert to color space %q\n", *spaceName)
			os.Exit(1)
		}
		c = conv
	}

	if *all {
		for _, space := range color.DefaultManager.Spaces(color.TraitPicker) {
			conv, ok := c.Converted(space)
			if !ok {
				continue
			}
			fmt.Printf("%s%-10s %s\n", swatch(conv), space.Name(), conv.String())
		}
		return
	}

	fmt.Printf("%s%s\n", swatch(c), c.String())
}
