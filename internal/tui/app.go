// ABOUTME: Runs an alias form as a full-screen bubbletea program.
// ABOUTME: Mouse and focus reporting are enabled so the tag field can react.

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the form until it is submitted or cancelled.
func Run(ctx context.Context, form *Form, opts ...tea.ProgramOption) (Result, error) {
	opts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	}, opts...)

	final, err := tea.NewProgram(form, opts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("run form: %w", err)
	}
	f, ok := final.(*Form)
	if !ok {
		return Result{}, fmt.Errorf("run form: unexpected model %T", final)
	}
	return f.Result(), nil
}
