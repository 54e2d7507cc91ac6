// Package cos provides common low-level types and utilities for the MWS client.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"crypto/md5"
	"encoding/base64"
	"io"
)

// Content-MD5 (RFC 1864): base64 of the raw 16-byte MD5 digest.
// Note that base64.StdEncoding emits no line breaks - the value goes
// on the wire exactly as returned.

func ChecksumB64(b []byte) string {
	digest := md5.Sum(b)
	return base64.StdEncoding.EncodeToString(digest[:])
}

func ChecksumB64R(r io.Reader) (string, error) {
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}
