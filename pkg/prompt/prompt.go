// SPDX-License-Identifier: Apache-2.0

// Package prompt wraps interactive yes/no confirmation so that destructive
// operations can be gated on explicit operator consent.
package prompt

import (
	"github.com/automa-saga/logx"
	"github.com/charmbracelet/huh"
)

// Confirmer asks the operator a yes/no question. A false answer is never an
// error; an unusable terminal declines rather than failing.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Func adapts a plain function to the Confirmer interface.
type Func func(question string) (bool, error)

func (f Func) Confirm(question string) (bool, error) {
	return f(question)
}

// runForm is indirected for tests; a real form needs a terminal.
var runForm = func(form *huh.Form) error {
	return form.Run()
}

// Terminal returns a Confirmer backed by an interactive terminal form.
// The answer defaults to No, so hitting enter declines; a prompt that
// cannot be shown at all (no terminal, closed stdin) declines as well.
func Terminal() Confirmer {
	return Func(func(question string) (bool, error) {
		answer := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		))
		if err := runForm(form); err != nil {
			logx.As().Warn().Err(err).
				Msg("Confirmation prompt unavailable, declining; pass --yes to pre-answer prompts")
			return false, nil
		}
		return answer, nil
	})
}

// AssumeYes returns a Confirmer that answers every question affirmatively,
// for non-interactive runs.
func AssumeYes() Confirmer {
	return Func(func(string) (bool, error) {
		return true, nil
	})
}
