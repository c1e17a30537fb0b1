// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-restaurant-directory/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:           ErrBadRequest,
	http.StatusUnauthorized:         ErrUnauthorized,
	http.StatusNotFound:             ErrNotFound,
	http.StatusConflict:             ErrConflict,
	http.StatusUnsupportedMediaType: ErrUnsupportedMediaType,
	http.StatusInternalServerError:  ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses. Other responses are mapped to
// the sentinel of their status, annotated with the server's {msg, error}.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	detail := responseDetail(resp.Body())
	if detail == "" {
		detail = http.StatusText(resp.StatusCode())
	}

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), detail)
}

func responseDetail(body []byte) string {
	var msg models.MessageResponse
	if err := json.Unmarshal(body, &msg); err != nil || msg.Msg == "" {
		return strings.TrimSpace(string(body))
	}
	if msg.Error == "" {
		return msg.Msg
	}
	return msg.Msg + ": " + msg.Error
}
