// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("pepper"))
	mac.Write([]byte("s3cret"))
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, HashString("s3cret", "pepper"))
	assert.Len(t, HashString("s3cret", "pepper"), 64)
}

func TestHashString_Deterministic(t *testing.T) {
	assert.Equal(t, HashString("password", "k"), HashString("password", "k"))
}

func TestHashString_DifferentKeys(t *testing.T) {
	assert.NotEqual(t, HashString("password", "key-one"), HashString("password", "key-two"))
}

func TestHashString_DifferentData(t *testing.T) {
	assert.NotEqual(t, HashString("password-1", "k"), HashString("password-2", "k"))
}
