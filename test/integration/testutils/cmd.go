package testutils

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

var multiSpaceRegex = regexp.MustCompile(" +")

// RunTasks executes a tasks command with the given arguments string (split by spaces).
// Use RunTasksArgs when arguments contain spaces that should be preserved.
func RunTasks(ctx context.Context, env []string, binary, cmdArgs string, nolog bool) (stdout, stderr []byte, err error) {
	cmdArgs = strings.TrimSpace(cmdArgs)
	cmdArgs = multiSpaceRegex.ReplaceAllString(cmdArgs, " ")

	var args []string
	if cmdArgs != "" {
		args = strings.Split(cmdArgs, " ")
	}

	return RunTasksArgs(ctx, env, binary, args, nolog)
}

// RunTasksArgs executes a tasks command with pre-split arguments.
// This preserves arguments that contain spaces (e.g., --title "buy milk").
func RunTasksArgs(ctx context.Context, env []string, binary string, args []string, nolog bool) (stdout, stderr []byte, err error) {
	var outData, errData bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &outData
	cmd.Stderr = &errData

	// Custom env goes after os.Environ() so it wins on duplicated keys.
	newEnv := append([]string{}, os.Environ()...)
	newEnv = append(newEnv, env...)
	if nolog {
		newEnv = append(newEnv, "TASKS_NO_LOG=true")
	}
	cmd.Env = newEnv

	err = cmd.Run()

	return outData.Bytes(), errData.Bytes(), err
}
