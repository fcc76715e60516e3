// Command sufsearch answers substring queries over a text file with a
// suffix-tree index.
//
// It prompts for a file name, a pattern and an index variant ("Simple
// Suffix Tree" or "Compact Suffix Tree"), then prints the 1-based match
// positions separated by single spaces, "Not Found" when the pattern does
// not occur, or "Wrong type of suffix tree" for an unknown variant. The
// exit code is non-zero when reading the input fails or when the index
// rejects the input: an empty text, or the sentinel '$' in the text or the
// pattern.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Dawnliving/SuffixTree-S-and-C/suffixtree"
	"github.com/Dawnliving/SuffixTree-S-and-C/suffixtrie"
)

// searcher is the query surface shared by both index variants.
type searcher interface {
	Search(pattern string) ([]int, error)
}

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "sufsearch:", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	prompt := func(label string) (string, error) {
		fmt.Fprint(out, label)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", errors.New("unexpected end of input")
		}
		return scanner.Text(), nil
	}

	filename, err := prompt("Please input the file name:")
	if err != nil {
		return err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	sequence := strings.TrimSpace(string(data))

	pattern, err := prompt("Please input the substring:")
	if err != nil {
		return err
	}
	variant, err := prompt("Please input the type of suffix tree:")
	if err != nil {
		return err
	}

	var index searcher
	switch variant {
	case "Simple Suffix Tree":
		index, err = suffixtrie.New(sequence)
	case "Compact Suffix Tree":
		index, err = suffixtree.New(sequence)
	default:
		fmt.Fprintln(out, "Wrong type of suffix tree")
		return nil
	}
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}

	positions, err := index.Search(pattern)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}
	if len(positions) == 0 {
		fmt.Fprintln(out, "Not Found")
		return nil
	}

	fields := make([]string, len(positions))
	for i, p := range positions {
		fields[i] = strconv.Itoa(p)
	}
	fmt.Fprintln(out, strings.Join(fields, " "))
	return nil
}
