// Package apc: control constants and wire-level parameter names
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package apc

// for optional tri-state args (nil means "not sent")

func Bool(v bool) *bool { return &v }
