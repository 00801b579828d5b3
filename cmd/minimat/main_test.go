package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minimat/matrix"
)

// execute runs the command tree with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

func TestCommands_Output(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"det 3x3", []string{"det", "[[8,5,-2],[4,7,20],[7,6,1]]"}, "-174.0\n"},
		{"det int", []string{"--int", "det", "[[2,1],[1,1]]"}, "1.0\n"},
		{"inverse int", []string{"--int", "inv", "[[1,2,0],[0,1,0],[3,0,1]]"}, "[1.0, -2.0, 0.0]\n[0.0, 1.0, 0.0]\n[-3.0, 6.0, 1.0]\n"},
		{"inverse float", []string{"inv", "[[2,0],[0,2]]"}, "[0.5, 0.0]\n[0.0, 0.5]\n"},
		{"rref float", []string{"rref", "[[1,2],[3,4]]"}, "[1.0, 0.0]\n[0.0, 1.0]\n"},
		{"rank", []string{"rank", "[[1,2,0,0],[2,4,0,0],[-1,2,1,1]]"}, "2\n"},
		{"trace", []string{"trace", "[[2,-5,0],[4,3,7],[-2,3,4]]"}, "9.0\n"},
		{"transpose", []string{"transpose", "[[1,2,3]]"}, "[1.0]\n[2.0]\n[3.0]\n"},
		{"minor", []string{"minor", "[[1,2,3],[4,5,6],[7,8,9]]", "1", "1"}, "[1.0, 3.0]\n[7.0, 9.0]\n"},
		{"adjugate", []string{"--int", "adj", "[[1,2],[3,4]]"}, "[4.0, -2.0]\n[-3.0, 1.0]\n"},
		{"matvec", []string{"mul", "[[2,-2],[-2,2]]", "[4,2]"}, "[4.0, -4.0]\n"},
		{"matmul", []string{"mul", "[[1,2],[3,4]]", "[[5,6],[7,8]]"}, "[19.0, 22.0]\n[43.0, 50.0]\n"},
		{"dot", []string{"dot", "[1,2,3]", "[4,5,6]"}, "32.0\n"},
		{"cross", []string{"cross", "[4,2,-3]", "[-2,-5,16]"}, "[17.0, -58.0, -16.0]\n"},
		{"angle", []string{"angle", "[1,0]", "[0,1]"}, "0\n"},
		{"norms", []string{"norms", "[3,-4]"}, "norm_1   7.0\nnorm     5.0\nnorm_inf 4.0\n"},
		{"lincomb", []string{"lincomb", "[[1,2],[3,4]]", "[2,1]"}, "[5.0, 8.0]\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		target error
	}{
		{"fraction in int mode", []string{"--int", "det", "[[0.5]]"}, errNotIntegral},
		{"malformed literal", []string{"det", "[[1,2"}, errParse},
		{"bad index", []string{"minor", "[[1,2],[3,4]]", "x", "0"}, errParse},
		{"singular", []string{"inv", "[[1,-1],[-1,1]]"}, matrix.ErrSingular},
		{"too large for inverse", []string{"inv", "[[1,0,0,0],[0,1,0,0],[0,0,1,0],[0,0,0,1]]"}, matrix.ErrUnsupportedDimension},
		{"ragged rows", []string{"rank", "[[1,2],[3]]"}, matrix.ErrBadShape},
		{"non-square trace", []string{"trace", "[[1,2,3]]"}, matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, stderr, err := execute(t, tc.args...)
			require.ErrorIs(t, err, tc.target)
			assert.Contains(t, stderr, "command failed")
		})
	}
}

func TestCommands_ArgCount(t *testing.T) {
	_, _, err := execute(t, "det")
	require.Error(t, err)
}

func TestLogging_FlagsAndEnv(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "--log-format", "json", "rank", "[[1]]")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"command started"`)
	assert.Contains(t, stderr, `"msg":"command finished"`)

	// Default level is warn: a successful run stays quiet.
	_, stderr, err = execute(t, "rank", "[[1]]")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = execute(t, "--log-format", "xml", "rank", "[[1]]")
	require.Error(t, err)

	_, _, err = execute(t, "--log-level", "loud", "rank", "[[1]]")
	require.Error(t, err)
}

func TestLogging_EnvFallback(t *testing.T) {
	t.Setenv(envLogLevel, "info")
	_, stderr, err := execute(t, "rank", "[[1]]")
	require.NoError(t, err)
	assert.Contains(t, stderr, "command finished")

	// An explicit flag wins over the environment.
	_, stderr, err = execute(t, "--log-level", "error", "rank", "[[1]]")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	t.Setenv(envLogLevel, "nope")
	_, _, err = execute(t, "rank", "[[1]]")
	require.Error(t, err)
}

func TestDemo(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)

	for _, want := range []string{"# det 3x3\n-174.0\n", "# det 4x4\n1032.0\n", "# det 2·I3\n8.0\n", "[17.0, -58.0, -16.0]\n"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 11, strings.Count(out, "# "))

	_, _, err = execute(t, "demo", "extra")
	require.Error(t, err)
}
