package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/MyCarrier-DevOps/go-semvermanager/internal/calculator"
)

const arrowPrefix = "→"

// WriteExplanation writes the steps recorded during a run followed by the
// store changes and the rendered result.
func WriteExplanation(w io.Writer, res calculator.Result) error {
	fmt.Fprintf(w, "Action: %s\n", res.Action)
	fmt.Fprintf(w, "Target: %s/%s\n", res.Definition, res.Build)

	if res.Explanation != nil && len(res.Explanation.Steps) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Steps:")
		for _, step := range res.Explanation.Steps {
			fmt.Fprintf(w, "  %s %s\n", arrowPrefix, step)
		}
	}

	if !res.Update.IsEmpty() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Changes:")
		for _, c := range res.Update.Commons {
			fmt.Fprintf(w, "  %s %s: %s.%s.%s\n", arrowPrefix, c.Definition, c.Major, c.Minor, c.Patch)
		}
		for _, c := range res.Update.Builds {
			fmt.Fprintf(w, "  %s %s/%s: build %s, revision %s\n", arrowPrefix, c.Definition, c.Build, c.Counter, c.Revision)
		}
	}

	fmt.Fprintln(w)
	if res.Generated != nil {
		fmt.Fprintf(w, "Result: %s\n", res.Generated.VersionInformationalNumber)
	} else {
		fmt.Fprintf(w, "Result: %s\n", res.Numbers.MajorMinorPatch())
	}
	return nil
}

// FormatExplanation returns the explain output as a string.
func FormatExplanation(res calculator.Result) string {
	var sb strings.Builder
	_ = WriteExplanation(&sb, res)
	return sb.String()
}
