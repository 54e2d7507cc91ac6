// Package cos provides common low-level types and utilities for the MWS client.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// Duration is time.Duration that marshals as a human-readable string
// ("90s", "2m") in both JSON and YAML config files.
type Duration time.Duration

func (d Duration) D() time.Duration             { return time.Duration(d) }
func (d Duration) MarshalJSON() ([]byte, error) { return jsoniter.Marshal(d.String()) }

func (d Duration) String() (s string) {
	s = time.Duration(d).String()
	// see related: https://github.com/golang/go/issues/39064
	if strings.HasSuffix(s, "m0s") {
		s = s[:len(s)-2]
	}
	return
}

func (d *Duration) UnmarshalJSON(b []byte) (err error) {
	var (
		dur time.Duration
		val string
	)
	if err = jsoniter.Unmarshal(b, &val); err != nil {
		return
	}
	dur, err = time.ParseDuration(val)
	*d = Duration(dur)
	return
}

func (d Duration) MarshalYAML() (any, error) { return d.String(), nil }

func (d *Duration) UnmarshalYAML(value *yaml.Node) (err error) {
	var (
		dur time.Duration
		val string
	)
	if err = value.Decode(&val); err != nil {
		return
	}
	dur, err = time.ParseDuration(val)
	*d = Duration(dur)
	return
}
