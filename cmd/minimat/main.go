// Command minimat exercises the matrix and vector packages from the shell.
//
// Usage:
//
//	minimat det '[[8,5,-2],[4,7,20],[7,6,1]]'
//	minimat --int inv '[[1,2,0],[0,1,0],[3,0,1]]'
//	minimat rank '[[1,2,0,0],[2,4,0,0],[-1,2,1,1]]'
//	minimat mul '[[2,-2],[-2,2]]' '[4,2]'
//	minimat demo
//
// Matrices and vectors are JSON literals. Results go to stdout; logs go to
// stderr through log/slog (see --log-level, --log-format and MINIMAT_LOG_LEVEL).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
