// Package cos provides common low-level types and utilities for the MWS client.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"strconv"
	"strings"
	"time"
	"unsafe"
)

func IsParseBool(s string) bool {
	yes, err := ParseBool(s)
	_ = err // error means false
	return yes
}

// ParseBool converts string to bool (case-insensitive):
//
//	y, yes, on -> true
//	n, no, off, <empty value> -> false
//
// strconv handles the following:
//
//	1, true, t -> true
//	0, false, f -> false
func ParseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	if s == "true" {
		return true, nil
	}
	s = strings.ToLower(s)
	switch s {
	case "y", "yes", "on", "true":
		return true, nil
	case "n", "no", "off", "false":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func NonZero[T int | int64 | time.Duration](val, dflt T) T {
	if val == 0 {
		return dflt
	}
	return val
}

// UnsafeS casts bytes to an immutable string (the caller must not mutate b).
func UnsafeS(b []byte) string { return *(*string)(unsafe.Pointer(&b)) }

// UnsafeB casts string to bytes (ditto).
func UnsafeB(s string) []byte { return unsafe.Slice(unsafe.StringData(s), len(s)) }
