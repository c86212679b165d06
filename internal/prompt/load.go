package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadPrompts reads one prompt per line from the provided file path. Blank
// lines and lines starting with # are skipped.
func LoadPrompts(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only prompt file.
			_ = cerr
		}
	}()

	var prompts []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		prompts = append(prompts, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(prompts) == 0 {
		return nil, fmt.Errorf("prompt file is empty")
	}
	return prompts, nil
}
