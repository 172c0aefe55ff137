package executor

import (
	"strings"

	"github.com/nlterm/nlterm/internal/phrase"
)

// Tone tells the renderer how to style a line.
type Tone int

// Tones used by the executor.
const (
	TonePlain Tone = iota
	ToneInfo
	ToneSuccess
	ToneWarn
	ToneError
	ToneDir
	ToneFile
)

// Line is one line of styled output.
type Line struct {
	Tone Tone
	Text string
}

// Outcome is the result of executing one step.
type Outcome struct {
	Step  phrase.Step
	Lines []Line
	// Output is the plain text recorded in the transcript.
	Output string
	// Skipped is set when the step's gate suppressed it.
	Skipped bool
	Err     error
}

// Failed reports whether the step ended in an error.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

func (o *Outcome) say(tone Tone, text string) {
	o.Lines = append(o.Lines, Line{Tone: tone, Text: text})
	o.Output = text
}

func (o *Outcome) fail(tone Tone, text string, err *StepError) {
	o.say(tone, text)
	err.Action = o.Step.Action
	o.Err = err
}

// Text joins all lines, for callers that do not style output.
func (o Outcome) Text() string {
	parts := make([]string, len(o.Lines))
	for i, l := range o.Lines {
		parts[i] = l.Text
	}
	return strings.Join(parts, "\n")
}
