// Package tassert provides common asserts for tests
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package tassert

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sellerkit/mws/tools/tlog"
)

var (
	fatalities = make(map[string]struct{})
	mu         sync.Mutex
)

func CheckFatal(tb testing.TB, err error) {
	if err == nil {
		return
	}
	mu.Lock()
	if _, ok := fatalities[tb.Name()]; ok {
		mu.Unlock()
		tlog.Logfln("--- %s: duplicate CheckFatal: %v", tb.Name(), err)
		runtime.Goexit()
	} else {
		fatalities[tb.Name()] = struct{}{}
		mu.Unlock()
		printStack()
		now := fmt.Sprintf("[%s]", time.Now().Format("15:04:05.000000"))
		tb.Fatal(now, err)
	}
}

func CheckError(tb testing.TB, err error) {
	if err != nil {
		printStack()
		now := fmt.Sprintf("[%s]", time.Now().Format("15:04:05.000000"))
		tb.Error(now, err)
	}
}

func Fatal(tb testing.TB, cond bool, msg string) {
	if !cond {
		printStack()
		tb.Fatal(msg)
	}
}

func Fatalf(tb testing.TB, cond bool, format string, args ...any) {
	if !cond {
		printStack()
		tb.Fatalf(format, args...)
	}
}

func Error(tb testing.TB, cond bool, msg string) {
	if !cond {
		printStack()
		tb.Error(msg)
	}
}

func Errorf(tb testing.TB, cond bool, format string, args ...any) {
	if !cond {
		printStack()
		tb.Errorf(format, args...)
	}
}

func printStack() {
	var buffer bytes.Buffer
	fmt.Fprintln(os.Stderr, "    tassert.printStack:")
	for i := 1; i < 9; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		i := strings.Index(file, "mws")
		if i < 0 {
			break
		}
		if strings.Contains(file, "tassert") {
			continue
		}
		fmt.Fprintf(&buffer, "\t%s:%d\n", file[i+4:], line)
	}
	os.Stderr.Write(buffer.Bytes())
}
