package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

func promptPassword(stdin *os.File, out io.Writer, label string) (string, error) {
	if stdin == nil {
		stdin = os.Stdin
	}
	fmt.Fprint(out, label)

	restore, err := disableEcho(stdin)
	if err != nil {
		// Not a terminal: read the piped line as is.
		return readLine(stdin)
	}
	line, readErr := readLine(stdin)
	restore()
	fmt.Fprintln(out)
	return line, readErr
}

func readLine(source io.Reader) (string, error) {
	line, err := bufio.NewReader(source).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", errors.New("empty password")
	}
	return line, nil
}
