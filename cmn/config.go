// Package cmn provides common constants, types, and utilities for the MWS client.
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cmn

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/pkg/errors"
	"github.com/sellerkit/mws/api/apc"
	"github.com/sellerkit/mws/api/env"
	"github.com/sellerkit/mws/cmn/cos"
	"gopkg.in/yaml.v3"
)

const DfltUserAgent = "sellerkit-mws/1.0 (Language=Go)"

// ClientConf is everything needed to construct a client: endpoint,
// credentials, transport knobs. Sources, in override order: config file,
// MWS_* environment, AWS shared config (the latter only for the keypair,
// and only when the keypair is otherwise absent).
type ClientConf struct {
	Endpoint      string       `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	Marketplace   string       `json:"marketplace,omitempty" yaml:"marketplace,omitempty"` // country-code shorthand for Endpoint
	AccessKeyID   string       `json:"access_key_id,omitempty" yaml:"access_key_id,omitempty"`
	SecretKey     string       `json:"secret_key,omitempty" yaml:"secret_key,omitempty"`
	SellerID      string       `json:"seller_id,omitempty" yaml:"seller_id,omitempty"`
	AuthToken     string       `json:"auth_token,omitempty" yaml:"auth_token,omitempty"`
	AccountType   string       `json:"account_type,omitempty" yaml:"account_type,omitempty"`
	UserAgent     string       `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	AWSProfile    string       `json:"aws_profile,omitempty" yaml:"aws_profile,omitempty"`
	Timeout       cos.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	SkipVerifyCrt bool         `json:"skip_verify_crt,omitempty" yaml:"skip_verify_crt,omitempty"`
}

// LoadConf reads a YAML or JSON config file (by extension) and applies
// environment overrides on top.
func LoadConf(path string) (*ClientConf, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	conf := &ClientConf{}
	switch ext := filepath.Ext(path); ext {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(b, conf)
	case ".json":
		err = cos.JSON.Unmarshal(b, conf)
	default:
		return nil, errors.Errorf("unknown config extension %q (expecting .yaml, .yml, or .json)", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %q", path)
	}
	conf.LoadEnv()
	return conf, nil
}

// LoadEnv overrides the config with MWS_* environment variables, where set.
func (c *ClientConf) LoadEnv() {
	if s := os.Getenv(env.MWS.Endpoint); s != "" {
		c.Endpoint = s
	}
	if s := os.Getenv(env.MWS.Marketplace); s != "" {
		c.Marketplace = s
	}
	if s := os.Getenv(env.MWS.AccessKeyID); s != "" {
		c.AccessKeyID = s
	}
	if s := os.Getenv(env.MWS.SecretKey); s != "" {
		c.SecretKey = s
	}
	if s := os.Getenv(env.MWS.SellerID); s != "" {
		c.SellerID = s
	}
	if s := os.Getenv(env.MWS.AuthToken); s != "" {
		c.AuthToken = s
	}
	if s := os.Getenv(env.MWS.AccountType); s != "" {
		c.AccountType = s
	}
	if s := os.Getenv(env.MWS.UserAgent); s != "" {
		c.UserAgent = s
	}
	if s := os.Getenv(env.MWS.AWSProfile); s != "" {
		c.AWSProfile = s
	}
	if s := os.Getenv(env.MWS.Timeout); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			c.Timeout = cos.Duration(d)
		}
	}
	if s := os.Getenv(env.MWS.SkipVerifyCrt); s != "" {
		c.SkipVerifyCrt = cos.IsParseBool(s)
	}
}

// Complete resolves the marketplace shorthand and, when the keypair is not
// configured, sources it from AWS shared config (~/.aws/credentials).
// Call once, before constructing the client.
func (c *ClientConf) Complete(ctx context.Context) error {
	if c.Endpoint == "" && c.Marketplace != "" {
		m, err := apc.LookupMarketplace(c.Marketplace)
		if err != nil {
			return err
		}
		c.Endpoint = m.Endpoint
	}
	if c.AccessKeyID == "" || c.SecretKey == "" {
		provider, err := c.CredentialsProvider(ctx)
		if err != nil {
			return err
		}
		creds, err := provider.Retrieve(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to retrieve AWS credentials")
		}
		c.AccessKeyID, c.SecretKey = creds.AccessKeyID, creds.SecretAccessKey
	}
	return c.Validate()
}

// CredentialsProvider returns a static provider when the keypair is
// configured, and the AWS shared-config chain (honoring AWSProfile)
// otherwise.
func (c *ClientConf) CredentialsProvider(ctx context.Context) (aws.CredentialsProvider, error) {
	if c.AccessKeyID != "" && c.SecretKey != "" {
		return credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretKey, "" /*session*/), nil
	}
	var opts []func(*awsconfig.LoadOptions) error
	if c.AWSProfile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(c.AWSProfile))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS shared config")
	}
	return cfg.Credentials, nil
}

// Validate fails fast on anything that would otherwise surface as a cryptic
// SignatureDoesNotMatch much later.
func (c *ClientConf) Validate() error {
	if c.Endpoint == "" {
		return ErrNoEndpoint
	}
	if !strings.Contains(c.Endpoint, "://") {
		return errors.Errorf("endpoint %q must include a scheme", c.Endpoint)
	}
	if c.Timeout < 0 {
		return errors.Errorf("invalid timeout %s", c.Timeout)
	}
	return c.Credentials().Validate()
}

func (c *ClientConf) Credentials() *Credentials {
	return &Credentials{
		AccessKeyID: c.AccessKeyID,
		SecretKey:   c.SecretKey,
		SellerID:    c.SellerID,
		AuthToken:   c.AuthToken,
		AccountType: c.AccountType,
	}
}
