// internal/link/link.go
package link

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"

	"github.com/rs/zerolog"

	"dotlink/internal/config"
	"dotlink/internal/errors"
	"dotlink/internal/logging"
)

// mklink 是 cmd.exe 的内置命令，只能通过 "cmd /c" 调用。
const (
	Shell       = "cmd"
	mklinkVerb  = "mklink"
	HardLinkArg = "/H"
	JunctionArg = "/J"
)

// Output 是外部命令执行结束后的结果。
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner 执行外部命令。只有在命令无法启动时才返回 error，
// 命令自身的失败通过 Output.ExitCode 反映。
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Output, error)
}

// ExecRunner 使用 os/exec 执行命令并捕获输出。
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	return out, err
}

// Flag 返回 LinkKind 对应的 mklink 参数：文件用硬链接，目录用 junction。
func Flag(kind config.LinkKind) string {
	if kind == config.KindFile {
		return HardLinkArg
	}
	return JunctionArg
}

// Creator 负责为每个 LinkSpec 调用 mklink。
type Creator struct {
	runner Runner
	logger zerolog.Logger
}

// NewCreator 创建 Creator，runner 为 nil 时使用 ExecRunner。
func NewCreator(runner Runner) *Creator {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Creator{
		runner: runner,
		logger: logging.GetLogger("link"),
	}
}

// Args 返回传给 cmd 的参数。
// 注意参数顺序沿用 dot_path 在前、loc_path 在后。
// 路径原样交给 cmd.exe 解析，其中的 &、| 和 %VAR% 会被 cmd 解释。
func Args(spec config.LinkSpec) []string {
	return []string{"/c", mklinkVerb, Flag(spec.Kind), spec.SourcePath, spec.TargetPath}
}

// Create 为单个 LinkSpec 创建链接。
// 命令无法启动或退出码非 0 时返回 LinkError。
func (c *Creator) Create(ctx context.Context, spec config.LinkSpec) error {
	args := Args(spec)
	logger := c.logger.With().Str("name", spec.Name).Str("kind", spec.Kind.String()).Logger()
	logging.LogCommand(logger, Shell, args)

	out, err := c.runner.Run(ctx, Shell, args...)
	if err != nil {
		return errors.Wrapf(err, errors.ErrLinkCreate, "无法为 '%s' 启动 %s", spec.Name, Shell).
			WithDetail("name", spec.Name)
	}

	if out.ExitCode != 0 {
		msg := failureText(out)
		logger.Error().
			Int("exit_code", out.ExitCode).
			Str("output", msg).
			Msg("mklink failed")
		return errors.Newf(errors.ErrLinkCreate, "为 '%s' 创建链接失败 (退出码 %d): %s", spec.Name, out.ExitCode, msg).
			WithDetail("name", spec.Name).
			WithDetail("exit_code", out.ExitCode).
			WithDetail("output", msg)
	}

	logger.Info().
		Str("dot_path", spec.SourcePath).
		Str("loc_path", spec.TargetPath).
		Str("output", decodeOutput(out.Stdout)).
		Msg("Link created")
	return nil
}

// CreateAll 按顺序创建所有链接，遇到第一个错误即停止。
func (c *Creator) CreateAll(ctx context.Context, specs []config.LinkSpec) error {
	for _, spec := range specs {
		if err := c.Create(ctx, spec); err != nil {
			return err
		}
	}
	c.logger.Debug().Int("count", len(specs)).Msg("All links processed")
	return nil
}

// failureText 优先使用 stderr，mklink 有时把错误写到 stdout。
func failureText(out Output) string {
	if msg := decodeOutput(out.Stderr); msg != "" {
		return msg
	}
	if msg := decodeOutput(out.Stdout); msg != "" {
		return msg
	}
	return "没有输出"
}
