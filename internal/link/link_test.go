package link

import (
	"context"
	stderrors "errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotlink/internal/config"
	"dotlink/internal/errors"
)

type call struct {
	name string
	args []string
}

// fakeRunner 记录调用，并按顺序返回预设结果。
type fakeRunner struct {
	calls   []call
	outputs []Output
	errs    []error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (Output, error) {
	i := len(f.calls)
	f.calls = append(f.calls, call{name: name, args: args})

	var out Output
	var err error
	if i < len(f.outputs) {
		out = f.outputs[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return out, err
}

func TestFlag(t *testing.T) {
	assert.Equal(t, HardLinkArg, Flag(config.KindFile))
	assert.Equal(t, JunctionArg, Flag(config.KindDirectory))
	assert.NotEqual(t, Flag(config.KindFile), Flag(config.KindDirectory))
}

func TestCreateFileSpec(t *testing.T) {
	runner := &fakeRunner{}
	creator := NewCreator(runner)

	spec := config.LinkSpec{Name: "a", Kind: config.KindFile, SourcePath: "/d/a", TargetPath: "/l/a"}
	require.NoError(t, creator.Create(context.Background(), spec))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "cmd", runner.calls[0].name)
	assert.Equal(t, []string{"/c", "mklink", "/H", "/d/a", "/l/a"}, runner.calls[0].args)
}

func TestCreateDirectorySpec(t *testing.T) {
	runner := &fakeRunner{}
	creator := NewCreator(runner)

	spec := config.LinkSpec{Name: "nvim", Kind: config.KindDirectory, SourcePath: `C:\dot\nvim`, TargetPath: `C:\loc\nvim`}
	require.NoError(t, creator.Create(context.Background(), spec))

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"/c", "mklink", "/J", `C:\dot\nvim`, `C:\loc\nvim`}, runner.calls[0].args)
}

func TestArgsPassPathsVerbatim(t *testing.T) {
	spec := config.LinkSpec{
		Name:       "tools",
		Kind:       config.KindDirectory,
		SourcePath: `C:\dot\a&b %USERPROFILE%`,
		TargetPath: `C:\loc\x|y`,
	}

	args := Args(spec)
	assert.Equal(t, []string{"/c", "mklink", "/J", `C:\dot\a&b %USERPROFILE%`, `C:\loc\x|y`}, args)
}

func TestCreateLaunchFailure(t *testing.T) {
	cause := stderrors.New("executable file not found in %PATH%")
	runner := &fakeRunner{errs: []error{cause}}

	err := NewCreator(runner).Create(context.Background(), config.LinkSpec{Name: "a", Kind: config.KindFile})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkCreate))
	assert.ErrorIs(t, err, cause)
}

func TestCreateNonZeroExit(t *testing.T) {
	runner := &fakeRunner{outputs: []Output{{
		Stderr:   []byte("Cannot create a file when that file already exists.\r\n"),
		ExitCode: 1,
	}}}

	err := NewCreator(runner).Create(context.Background(), config.LinkSpec{Name: "a", Kind: config.KindFile})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLinkCreate))
	assert.Contains(t, err.Error(), "Cannot create a file when that file already exists.")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, 1, details["exit_code"])
	assert.Equal(t, "a", details["name"])
}

func TestCreateNonZeroExitFallsBackToStdout(t *testing.T) {
	runner := &fakeRunner{outputs: []Output{{
		Stdout:   []byte("The system cannot find the path specified.\r\n"),
		ExitCode: 1,
	}}}

	err := NewCreator(runner).Create(context.Background(), config.LinkSpec{Name: "a", Kind: config.KindDirectory})
	require.Error(t, err)
	assert.Equal(t, "The system cannot find the path specified.", errors.GetErrorDetails(err)["output"])
}

func TestCreateAllSequentialInOrder(t *testing.T) {
	runner := &fakeRunner{}
	specs := []config.LinkSpec{
		{Name: "a", Kind: config.KindFile, SourcePath: "/d/a", TargetPath: "/l/a"},
		{Name: "b", Kind: config.KindDirectory, SourcePath: "/d/b", TargetPath: "/l/b"},
	}

	require.NoError(t, NewCreator(runner).CreateAll(context.Background(), specs))

	require.Len(t, runner.calls, 2)
	assert.Equal(t, "/d/a", runner.calls[0].args[3])
	assert.Equal(t, "/d/b", runner.calls[1].args[3])
}

func TestCreateAllStopsAtFirstFailure(t *testing.T) {
	runner := &fakeRunner{outputs: []Output{{ExitCode: 0}, {ExitCode: 1}}}
	specs := []config.LinkSpec{
		{Name: "a", Kind: config.KindFile},
		{Name: "b", Kind: config.KindFile},
		{Name: "c", Kind: config.KindFile},
	}

	err := NewCreator(runner).CreateAll(context.Background(), specs)
	require.Error(t, err)
	assert.Equal(t, "b", errors.GetErrorDetails(err)["name"])
	assert.Len(t, runner.calls, 2)
}

func TestCreateAllEmpty(t *testing.T) {
	runner := &fakeRunner{}
	require.NoError(t, NewCreator(runner).CreateAll(context.Background(), nil))
	assert.Empty(t, runner.calls)
}

func TestFailureTextWithoutOutput(t *testing.T) {
	assert.Equal(t, "没有输出", failureText(Output{ExitCode: 2}))
}

func TestExecRunnerReportsExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	out, err := ExecRunner{}.Run(context.Background(), "sh", "-c", "echo oops >&2; exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, out.ExitCode)
	assert.Equal(t, "oops\n", string(out.Stderr))
}

func TestExecRunnerLaunchFailure(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), "dotlink-no-such-binary")
	assert.Error(t, err)
}
