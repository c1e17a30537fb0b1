// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-access-token-duration access token lifetime (e.g., "1h")
//	-refresh-token-duration refresh token lifetime (e.g., "168h")
//	-password-hash-key password pepper
//	-bcrypt-cost bcrypt work factor
//	-cookie-tokens also set token cookies on login
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-s3-endpoint, -s3-region, -s3-bucket object storage location
//	-presign-ttl presigned URL lifetime (e.g., "15m")
//	-revocation-sweep-interval ledger purge interval (e.g., "1h")
//	-version application version
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("restaurant-directory", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	fs.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.Auth.AccessTokenDuration, "access-token-duration", 0, "Access token duration (e.g., 1h)")
	fs.DurationVar(&cfg.Auth.RefreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 168h)")
	fs.StringVar(&cfg.Auth.PasswordHashKey, "password-hash-key", "", "Password hash key")
	fs.IntVar(&cfg.Auth.BcryptCost, "bcrypt-cost", 0, "Bcrypt cost")
	fs.BoolVar(&cfg.Auth.CookieTokens, "cookie-tokens", false, "Set token cookies on login")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	fs.StringVar(&cfg.Storage.Objects.Endpoint, "s3-endpoint", "", "S3 compatible endpoint")
	fs.StringVar(&cfg.Storage.Objects.Region, "s3-region", "", "S3 region")
	fs.StringVar(&cfg.Storage.Objects.Bucket, "s3-bucket", "", "S3 bucket")
	fs.DurationVar(&cfg.Storage.Objects.PresignTTL, "presign-ttl", 0, "Presigned URL lifetime (e.g., 15m)")

	fs.DurationVar(&cfg.Workers.RevocationSweepInterval, "revocation-sweep-interval", 0, "Revocation ledger purge interval")

	fs.StringVar(&cfg.App.Version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within [1, 65535]")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
