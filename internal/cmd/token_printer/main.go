package main

// Debugging aid: prints the token stream the scanner produces for its
// argument.
//
//	go run ./internal/cmd/token_printer 'with x as 1 print x'

import (
	"fmt"
	"os"
	"strings"

	"github.com/AeriaVelocity/clarice/internal/clarice"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: token_printer <source>")
		os.Exit(64)
	}

	source := strings.Join(os.Args[1:], " ")
	scanner := clarice.NewScanner([]rune(source))
	for {
		token := scanner.Next()
		fmt.Println(token)
		if token.Typ == clarice.EOF {
			break
		}
	}
}
