//go:build debug

// Package debug provides debug utilities
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

import (
	"fmt"
)

func Assert(cond bool, a ...any) {
	if cond {
		return
	}
	if len(a) > 0 {
		panic("DEBUG PANIC: " + fmt.Sprint(a...))
	}
	panic("DEBUG PANIC")
}
