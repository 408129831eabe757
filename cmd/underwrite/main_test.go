package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/underwrite/internal/batch"
	"github.com/wizzomafizzo/underwrite/internal/prompt"
	"github.com/wizzomafizzo/underwrite/internal/testutil"
)

func TestMain(m *testing.M) {
	testutil.VerifyTestMain(m)
}

// scriptedPrompter answers prompts from a fixed list
type scriptedPrompter struct {
	answers []string
	closed  bool
}

func (s *scriptedPrompter) Prompt(string) (string, error) {
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedPrompter) Close() error {
	s.closed = true
	return nil
}

type testEnv struct {
	deps     *dependencies
	logs     *bytes.Buffer
	prompter *scriptedPrompter
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{logs: &bytes.Buffer{}, prompter: &scriptedPrompter{}}
	env.deps = &dependencies{
		fs:          afero.NewMemMapFs(),
		logWriter:   env.logs,
		newPrompter: func() prompt.Prompter { return env.prompter },
	}
	return env
}

// execute runs the root command with args and returns what it printed
func (e *testEnv) execute(args ...string) (stdout, stderr string, err error) {
	cmd := createRootCommand(e.deps)

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		name string
		want int
	}{
		{name: "generic", err: errors.New("boom"), want: exitFailure},
		{name: "missing batch", err: &batch.MissingInputError{Path: "data/batch_02.csv"}, want: exitMissingInput},
		{name: "wrapped missing batch", err: fmt.Errorf("command execution failed: %w", &batch.MissingInputError{}), want: exitMissingInput},
		{name: "malformed record", err: fmt.Errorf("outer: %w", &batch.MalformedRecordError{Err: errors.New("bad")}), want: exitMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestCreateNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := createNewRootCommand()
	assert.Equal(t, "underwrite", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	for _, name := range []string{"init", "validate", "generate", "evaluate", "check", "rules"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Use)
		assert.NotNil(t, sub.RunE, name)
	}
}

func TestRootShowsHelp(t *testing.T) {
	t.Parallel()

	stdout, _, err := newTestEnv(t).execute()
	require.NoError(t, err)
	assert.Contains(t, stdout, "Available Commands")
}
