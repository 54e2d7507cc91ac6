// Package cmn provides common constants, types, and utilities for the MWS client.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sellerkit/mws/api/env"
	"github.com/sellerkit/mws/cmn"
)

func writeConf(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfYAML(t *testing.T) {
	path := writeConf(t, "mws.yaml", `
endpoint: https://mws-eu.amazonservices.com
access_key_id: AKIAYAML
secret_key: yamlsecret
seller_id: A1YAML
account_type: Merchant
timeout: 1m30s
skip_verify_crt: true
`)
	conf, err := cmn.LoadConf(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Endpoint != "https://mws-eu.amazonservices.com" || conf.AccessKeyID != "AKIAYAML" ||
		conf.SecretKey != "yamlsecret" || conf.SellerID != "A1YAML" || conf.AccountType != "Merchant" {
		t.Errorf("parsed conf off: %+v", conf)
	}
	if conf.Timeout.D() != 90*time.Second {
		t.Errorf("timeout = %s", conf.Timeout)
	}
	if !conf.SkipVerifyCrt {
		t.Error("skip_verify_crt not parsed")
	}
}

func TestLoadConfJSON(t *testing.T) {
	path := writeConf(t, "mws.json",
		`{"marketplace": "de", "access_key_id": "AKIAJSON", "secret_key": "jsonsecret", "seller_id": "A1JSON", "timeout": "45s"}`)
	conf, err := cmn.LoadConf(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Marketplace != "de" || conf.AccessKeyID != "AKIAJSON" {
		t.Errorf("parsed conf off: %+v", conf)
	}
	if conf.Timeout.D() != 45*time.Second {
		t.Errorf("timeout = %s", conf.Timeout)
	}
}

func TestLoadConfBadInput(t *testing.T) {
	if _, err := cmn.LoadConf(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
	if _, err := cmn.LoadConf(writeConf(t, "mws.toml", "endpoint = 'x'")); err == nil {
		t.Error("expected error for an unknown extension")
	}
	if _, err := cmn.LoadConf(writeConf(t, "mws.yaml", "endpoint: [")); err == nil {
		t.Error("expected error for broken YAML")
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(env.MWS.Endpoint, "https://mws.amazonservices.jp")
	t.Setenv(env.MWS.AccessKeyID, "AKIAENV")
	t.Setenv(env.MWS.SecretKey, "envsecret")
	t.Setenv(env.MWS.SellerID, "A1ENV")
	t.Setenv(env.MWS.AuthToken, "amzn.mws.delegated")
	t.Setenv(env.MWS.Timeout, "2m")
	t.Setenv(env.MWS.SkipVerifyCrt, "yes")

	conf := &cmn.ClientConf{Endpoint: "https://file-loses.example.com", SellerID: "overridden"}
	conf.LoadEnv()
	if conf.Endpoint != "https://mws.amazonservices.jp" {
		t.Errorf("endpoint = %q, environment must win", conf.Endpoint)
	}
	if conf.AccessKeyID != "AKIAENV" || conf.SecretKey != "envsecret" || conf.SellerID != "A1ENV" {
		t.Errorf("creds off: %+v", conf)
	}
	if conf.AuthToken != "amzn.mws.delegated" {
		t.Errorf("auth token = %q", conf.AuthToken)
	}
	if conf.Timeout.D() != 2*time.Minute {
		t.Errorf("timeout = %s", conf.Timeout)
	}
	if !conf.SkipVerifyCrt {
		t.Error("MWS_SKIP_VERIFY_CRT=yes not applied")
	}

	// a malformed duration is ignored, not fatal
	t.Setenv(env.MWS.Timeout, "not-a-duration")
	conf.LoadEnv()
	if conf.Timeout.D() != 2*time.Minute {
		t.Errorf("malformed timeout must keep the previous value, got %s", conf.Timeout)
	}
}

func TestCompleteMarketplace(t *testing.T) {
	conf := &cmn.ClientConf{
		Marketplace: "DE",
		AccessKeyID: "AK",
		SecretKey:   "SK",
		SellerID:    "A1S",
	}
	if err := conf.Complete(context.Background()); err != nil {
		t.Fatal(err)
	}
	if conf.Endpoint != "https://mws-eu.amazonservices.com" {
		t.Errorf("endpoint = %q", conf.Endpoint)
	}

	conf = &cmn.ClientConf{Marketplace: "atlantis", AccessKeyID: "AK", SecretKey: "SK", SellerID: "A1S"}
	if err := conf.Complete(context.Background()); err == nil {
		t.Error("expected error for an unknown marketplace")
	}
}

func TestCompleteAWSSharedCredentials(t *testing.T) {
	dir := t.TempDir()
	credsFile := filepath.Join(dir, "credentials")
	err := os.WriteFile(credsFile, []byte("[sellertest]\naws_access_key_id = AKIDSHARED\naws_secret_access_key = sharedsecret\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", credsFile)
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config")) // absent on purpose
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")

	conf := &cmn.ClientConf{
		Endpoint:   "https://mws.amazonservices.com",
		SellerID:   "A1S",
		AWSProfile: "sellertest",
	}
	if err := conf.Complete(context.Background()); err != nil {
		t.Fatal(err)
	}
	if conf.AccessKeyID != "AKIDSHARED" || conf.SecretKey != "sharedsecret" {
		t.Errorf("keypair not sourced from the shared file: %q/%q", conf.AccessKeyID, conf.SecretKey)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		conf    cmn.ClientConf
		wantErr bool
	}{
		{"ok", cmn.ClientConf{Endpoint: "https://x", AccessKeyID: "a", SecretKey: "s", SellerID: "i"}, false},
		{"no_endpoint", cmn.ClientConf{AccessKeyID: "a", SecretKey: "s", SellerID: "i"}, true},
		{"no_scheme", cmn.ClientConf{Endpoint: "mws.amazonservices.com", AccessKeyID: "a", SecretKey: "s", SellerID: "i"}, true},
		{"negative_timeout", cmn.ClientConf{Endpoint: "https://x", AccessKeyID: "a", SecretKey: "s", SellerID: "i", Timeout: -1}, true},
		{"no_seller", cmn.ClientConf{Endpoint: "https://x", AccessKeyID: "a", SecretKey: "s"}, true},
	}
	for _, test := range tests {
		err := test.conf.Validate()
		if err != nil != test.wantErr {
			t.Errorf("test: %s, err: %v, wantErr: %t", test.name, err, test.wantErr)
		}
	}
	if !errors.Is((&cmn.ClientConf{}).Validate(), cmn.ErrNoEndpoint) {
		t.Error("empty conf must fail with ErrNoEndpoint")
	}
}
