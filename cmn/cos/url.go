// Package cos provides common low-level types and utilities for the MWS client.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

const hexDigits = "0123456789ABCDEF"

// unreserved characters per RFC 3986 (section 2.3)
func isUnreserved(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.' || c == '~'
}

// EscapeParam percent-encodes s byte-wise per RFC 3986: unreserved octets pass
// through, every other octet - space and '+' included - becomes %XX with
// uppercase hex. Unlike net/url.QueryEscape, space is never encoded as '+'
// (a '+' in a signed query would hash differently on the two sides).
func EscapeParam(s string) string {
	var n int
	for i := range len(s) {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	b := make([]byte, 0, len(s)+2*n)
	for i := range len(s) {
		c := s[i]
		if isUnreserved(c) {
			b = append(b, c)
		} else {
			b = append(b, '%', hexDigits[c>>4], hexDigits[c&0xf])
		}
	}
	return UnsafeS(b)
}

func IsLastB(s string, b byte) bool { return s != "" && s[len(s)-1] == b }

// JoinPath joins two path elements that may (or may not) be prefixed/suffixed
// with a slash; an empty path counts as the root path.
func JoinPath(url, path string) string {
	if path == "" {
		path = "/"
	}
	if url == "" {
		return path
	}
	suffix := IsLastB(url, '/')
	prefix := path[0] == '/'
	if suffix && prefix {
		return url + path[1:]
	}
	if !suffix && !prefix {
		return url + "/" + path
	}
	return url + path
}
