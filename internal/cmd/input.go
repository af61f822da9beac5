package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jkcg-learning/debate/internal/domain"
)

// Console prompts for values not given as flags.
const (
	promptTopic    = "Please enter the debate topic: "
	promptDebaterA = "Please enter the name of Debater A (famous person): "
	promptDebaterB = "Please enter the name of Debater B (famous person): "
)

// promptInput fills the blank fields of in from r, prompting on w.
// End of input leaves the remaining fields empty.
func promptInput(r io.Reader, w io.Writer, in domain.DebateInput) (domain.DebateInput, error) {
	reader := bufio.NewReader(r)
	ask := func(prompt string, dst *string) error {
		if *dst != "" {
			return nil
		}
		fmt.Fprint(w, prompt)
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read input: %w", err)
		}
		*dst = strings.TrimSpace(line)
		return nil
	}

	if err := ask(promptTopic, &in.Topic); err != nil {
		return in, err
	}
	if err := ask(promptDebaterA, &in.DebaterAName); err != nil {
		return in, err
	}
	if err := ask(promptDebaterB, &in.DebaterBName); err != nil {
		return in, err
	}
	return in, nil
}
