// Package cos provides common low-level types and utilities for the MWS client.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"sort"
)

// StrKVs carries request parameters prior to canonicalization.
type StrKVs map[string]string

func NewStrKVs(l int) StrKVs {
	return make(StrKVs, l)
}

func (kvs StrKVs) Keys() []string {
	keys := make([]string, 0, len(kvs))
	for k := range kvs {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys in lexicographic (byte-wise) order.
func (kvs StrKVs) SortedKeys() []string {
	keys := kvs.Keys()
	sort.Strings(keys)
	return keys
}
