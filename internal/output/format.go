// Package output renders tasks as markdown.
package output

import (
	"fmt"
	"io"
	"strings"

	"pulljira/internal/service"
)

// FormatTask writes one unchecked checklist line for task.
// Format: "- [ ] [{TITLE}]({URL})\n"
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "- [ ] [%s](%s)\n", task.Title, task.URL)
}

// Markdown renders tasks as checklist lines in the given order.
// An empty slice renders as the empty string.
func Markdown(tasks []service.Task) string {
	var b strings.Builder
	for _, task := range tasks {
		FormatTask(&b, task)
	}
	return b.String()
}
