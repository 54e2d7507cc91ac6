// Package cos provides common low-level types and utilities for the MWS client.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	jsoniter "github.com/json-iterator/go"
)

// JSON is used to Marshal/Unmarshal client configuration
// and is initialized in init function.
var JSON jsoniter.API

func init() {
	jsonConf := jsoniter.Config{
		EscapeHTML:             false, // no HTML in the payloads we handle
		ValidateJsonRawMessage: false,
		SortMapKeys:            true,
	}
	JSON = jsonConf.Froze()
}
