// Command preview formats text the way the bot would and prints the
// result to the terminal. Useful for eyeballing how a model reply
// survives the formatter:
//
//	echo '**Tip:** drink *water*' | preview
//	preview -f reply.txt -dump
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"

	"github.com/fitmax/coachmax/richtext"
)

func main() {
	file := flag.String("f", "", "read input from a file instead of stdin")
	width := flag.Int("w", 80, "render width")
	dump := flag.Bool("dump", false, "dump the parsed document instead of rendering it")
	markdown := flag.Bool("md", false, "print the Discord markdown rendering")
	flag.Parse()

	var data []byte
	var err error
	if *file != "" {
		data, err = os.ReadFile(*file)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatalln("could not read input:", err)
	}

	doc := richtext.Format(string(data), lipgloss.NewStyle())

	switch {
	case *dump:
		pp.Println(doc)
	case *markdown:
		fmt.Println(doc.Markdown())
	default:
		fmt.Println(doc.Render(*width))
	}
}
