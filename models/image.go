// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// ObjectOperation is a single storage operation a presigned URL grants.
type ObjectOperation string

const (
	ObjectPut    ObjectOperation = "put"
	ObjectGet    ObjectOperation = "get"
	ObjectDelete ObjectOperation = "delete"
)

// PresignedURL pairs an object key with the URL granting one operation on it.
type PresignedURL struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadFile describes a file the client intends to upload.
// An empty Name asks the server to generate a key.
type UploadFile struct {
	Name string `json:"name"`
}

// UploadFiles accepts either a single file object or a list of them.
type UploadFiles []UploadFile

// UnmarshalJSON implements [json.Unmarshaler].
func (f *UploadFiles) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var one UploadFile
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*f = UploadFiles{one}
		return nil
	}

	var many []UploadFile
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*f = many
	return nil
}

// KeyList accepts either a single key string or a list of keys.
type KeyList []string

// UnmarshalJSON implements [json.Unmarshaler].
func (k *KeyList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var one string
		if err := json.Unmarshal(b, &one); err != nil {
			return err
		}
		*k = KeyList{one}
		return nil
	}

	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*k = many
	return nil
}
