// Package trand provides random strings for dev tools and tests
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package trand

import (
	"math/rand/v2"
)

const letterRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func String(n int) string {
	b := make([]byte, n)
	for i := range n {
		b[i] = letterRunes[rand.Int()%len(letterRunes)]
	}
	return string(b)
}
