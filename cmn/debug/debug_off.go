//go:build !debug

// Package debug provides debug utilities
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package debug

func Assert(cond bool, a ...any) {}
