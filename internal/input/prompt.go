package input

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/alexisbeaulieu97/brandshot/internal/platform"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("input aborted")

// Prompter asks the user for anything not supplied on the command line.
type Prompter interface {
	SelectPlatforms(ctx context.Context) ([]string, error)
	Content(ctx context.Context) (string, error)
	Overrides(ctx context.Context) (string, error)
}

// SurveyPrompter implements Prompter on an interactive terminal.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

var _ Prompter = (*SurveyPrompter)(nil)

// NewSurveyPrompter builds a prompter; opts are passed to every survey call.
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

// PlatformOptions lists the menu entries, one per platform plus "all".
func PlatformOptions() []string {
	specs := platform.All()
	options := make([]string, 0, len(specs)+1)
	for _, spec := range specs {
		options = append(options, fmt.Sprintf("%s. %s", spec.ID, spec))
	}
	return append(options, fmt.Sprintf("%d. All of the above", len(specs)+1))
}

// SelectionFromOptions maps chosen menu entries back to platform identifiers.
func SelectionFromOptions(chosen []string) []string {
	ids := make([]string, 0, len(chosen))
	for _, entry := range chosen {
		id, _, _ := strings.Cut(entry, ".")
		ids = append(ids, strings.TrimSpace(id))
	}
	return ids
}

// SelectPlatforms asks which canvases to produce.
func (p *SurveyPrompter) SelectPlatforms(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var chosen []string
	prompt := &survey.MultiSelect{
		Message: "Which social image(s) would you like to generate?",
		Options: PlatformOptions(),
	}
	if err := survey.AskOne(prompt, &chosen, p.opts...); err != nil {
		return nil, translateSurveyErr(err)
	}
	return SelectionFromOptions(chosen), nil
}

// Content asks for the HTML fragment.
func (p *SurveyPrompter) Content(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Multiline{
		Message: "Paste your raw HTML",
		Help:    "Finish with an empty line. Leave blank to use a sample heading and paragraph.",
	}
	if err := survey.AskOne(prompt, &out, p.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return strings.TrimSpace(out), nil
}

// Overrides asks whether to add CSS and, if so, collects it.
func (p *SurveyPrompter) Overrides(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var wanted bool
	if err := survey.AskOne(&survey.Confirm{Message: "Add or override any CSS rules?"}, &wanted, p.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	if !wanted {
		return "", nil
	}

	var out string
	prompt := &survey.Multiline{
		Message: "Paste extra CSS rules",
		Help:    "They are appended after the brand defaults and win on conflicts.",
	}
	if err := survey.AskOne(prompt, &out, p.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return strings.TrimSpace(out), nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
