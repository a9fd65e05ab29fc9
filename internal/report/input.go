package report

import (
	"fmt"
	"io"
	"os"

	"citydensity/internal/city"
)

// StdinInput is the Input value that reads the CSV from standard input.
const StdinInput = "-"

// ReadInput returns the CSV blob named by input: the built-in dataset when
// input is empty, stdin when it is "-", otherwise the file at that path.
func ReadInput(input string, stdin io.Reader) (string, error) {
	switch input {
	case "":
		return city.DefaultDataset, nil
	case StdinInput:
		if stdin == nil {
			stdin = os.Stdin
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}
}

func describeInput(input string) string {
	switch input {
	case "":
		return "builtin"
	case StdinInput:
		return "stdin"
	default:
		return input
	}
}
