package readwrite

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"

	errs "github.com/eaugeas/redblack/errors"
)

// Script is the sequence of operations read from a key source
type Script struct {
	// Insert holds the keys to insert, in order
	Insert []int

	// Delete holds the keys to delete once every insertion is done
	Delete []int
}

// ReadScript reads a key source. The first non blank line holds
// the keys to insert and every line after it the keys to delete.
// Keys are decimal integers separated by white space.
func ReadScript(r io.Reader) (Script, error) {
	var script Script
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	inserted := false
	for scanner.Scan() {
		line++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		keys, err := parseKeys(line, tokens)
		if err != nil {
			return Script{}, err
		}

		if !inserted {
			script.Insert = keys
			inserted = true
		} else {
			script.Delete = append(script.Delete, keys...)
		}
	}

	if err := scanner.Err(); err != nil {
		return Script{}, errs.Wrap(errs.ErrCodeReadInput, err, "failed to read keys")
	}

	return script, nil
}

func parseKeys(line int, tokens []string) ([]int, error) {
	keys := make([]int, 0, len(tokens))
	for _, token := range tokens {
		key, err := strconv.Atoi(token)
		if err != nil {
			return nil, errs.New(errs.ErrCodeInvalidKey, "line %d: invalid key %q", line, token)
		}
		keys = append(keys, key)
	}

	return keys, nil
}

// WriteKeys writes the keys of seq to w as a single line of
// space separated integers terminated by a new line
func WriteKeys(w io.Writer, seq iter.Seq[int]) error {
	bw := bufio.NewWriter(w)

	first := true
	for key := range seq {
		if !first {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(key))
		first = false
	}
	bw.WriteByte('\n')

	if err := bw.Flush(); err != nil {
		return errs.Wrap(errs.ErrCodeWriteOutput, err, "failed to write keys")
	}

	return nil
}
