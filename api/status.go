// Package api provides a native Go client for Amazon MWS-compatible
// marketplace endpoints.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"sync"

	"github.com/sellerkit/mws/api/apc"
	"golang.org/x/sync/errgroup"
)

type statusResult struct {
	Status    string `xml:"GetServiceStatusResult>Status"`
	Timestamp string `xml:"GetServiceStatusResult>Timestamp"`
}

// GetServiceStatus returns the raw service-status response for one section.
func GetServiceStatus(bp BaseParams, section *apc.Section) (*Response, error) {
	reqParams := AllocRp()
	{
		reqParams.BaseParams = bp
		reqParams.Section = section
		reqParams.Action = apc.ActServiceStatus
	}
	resp, err := reqParams.do()
	FreeRp(reqParams)
	return resp, err
}

// ServiceStatus is the parsed convenience variant: returns one of the
// apc.Service* states (GREEN, GREEN_I, YELLOW, RED).
func ServiceStatus(bp BaseParams, section *apc.Section) (string, error) {
	resp, err := GetServiceStatus(bp, section)
	if err != nil {
		return "", err
	}
	var out statusResult
	if err := resp.Unmarshal(&out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// ServiceStatusAll polls every section concurrently and returns a map
// keyed by section name; the first request error wins.
func ServiceStatusAll(bp BaseParams) (map[string]string, error) {
	var (
		mu       sync.Mutex
		statuses = make(map[string]string, len(apc.Sections()))
		group    = &errgroup.Group{}
	)
	for _, section := range apc.Sections() {
		group.Go(func() error {
			status, err := ServiceStatus(bp, section)
			if err != nil {
				return err
			}
			mu.Lock()
			statuses[section.Name] = status
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return statuses, nil
}
