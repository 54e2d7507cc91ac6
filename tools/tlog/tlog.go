// Package tlog provides common logf and logln primitives for tests
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package tlog

import (
	"fmt"
	"os"
	"time"
)

func prependTime(msg string) string {
	return fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05.000000"), msg)
}

func Logln(msg string) {
	fmt.Fprint(os.Stdout, prependTime(msg+"\n"))
}

func Logf(f string, a ...any) {
	fmt.Fprint(os.Stdout, prependTime(fmt.Sprintf(f, a...)))
}

func Logfln(f string, a ...any) {
	Logf(f+"\n", a...)
}
