// Package cos provides common low-level types and utilities for the MWS client.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"time"
)

// in addition to standard layouts at /usr/local/go/src/time/format.go
const (
	// seconds resolution, always UTC ('Z' is a literal, not a zone placeholder)
	FmtMWSTime = "2006-01-02T15:04:05Z"

	// response headers (x-mws-timestamp et al.) carry milliseconds
	ISO8601Milli = "2006-01-02T15:04:05.000Z"
)

// FormatMWSTime renders t in UTC at seconds resolution - the only timestamp
// form the signed query accepts.
func FormatMWSTime(t time.Time) string {
	return t.UTC().Format(FmtMWSTime)
}

func ParseMWSTime(s string) (time.Time, error) {
	t, err := time.Parse(FmtMWSTime, s)
	if err == nil {
		return t, nil
	}
	if t, e := time.Parse(ISO8601Milli, s); e == nil {
		return t, nil
	}
	if t, e := time.Parse(time.RFC3339, s); e == nil {
		return t, nil
	}
	return t, err
}

func IsTimeZero(t time.Time) bool { return t.IsZero() || t.UTC().Unix() == 0 } // https://github.com/golang/go/issues/33597
