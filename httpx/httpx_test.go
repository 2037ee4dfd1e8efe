/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/mapper"
	"dirpx.dev/derrclass/name"
)

func renderInput(t *testing.T) *derrclass.Rendered {
	t.Helper()
	ns := derrclass.New()
	_, err := ns.RegisterClasses(map[name.Name]derrclass.ClassData{
		"user": {Types: map[name.Name]derrclass.TypeData{
			"input": {
				Severities: []name.Name{"error"},
				Params:     []derrclass.ParamSpec{derrclass.Param("input")},
				Encoders: map[name.Name]derrclass.Encoder{
					"standard": func(derrclass.Context, derrclass.CustomOptions) (any, error) {
						return "bad input", nil
					},
				},
			},
		}},
	})
	require.NoError(t, err)
	inst, err := ns.NewInstance("user", "input", "error", derrclass.WithParam("input", 42))
	require.NoError(t, err)
	r, err := inst.Render("standard")
	require.NoError(t, err)
	return r
}

func newWriter(t *testing.T) Writer {
	t.Helper()
	m, err := mapper.New()
	require.NoError(t, err)
	return Writer{Mapper: m}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	newWriter(t).Write(rec, renderInput(t), Meta{RequestID: "req-1", RetryAfter: 1500 * time.Millisecond})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Equal(t, map[string]any{
		"reason":    "user.input.error",
		"class":     "user",
		"type":      "input",
		"severity":  "error",
		"encoding":  "standard",
		"message":   "bad input",
		"requestId": "req-1",
		"details": []any{
			map[string]any{"type": "param", "field": "input", "value": "42"},
		},
	}, decode(t, rec))
}

func TestWrite_Plain(t *testing.T) {
	rec := httptest.NewRecorder()
	newWriter(t).Write(rec, errors.New("boom"), Meta{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, map[string]any{"message": "boom"}, decode(t, rec))
}

func TestWrite_Nil(t *testing.T) {
	rec := httptest.NewRecorder()
	newWriter(t).Write(rec, nil, Meta{})
	assert.Equal(t, 0, rec.Body.Len())
}

func TestHandle(t *testing.T) {
	w := newWriter(t)
	h := w.Handle(func(rw http.ResponseWriter, req *http.Request) error {
		if req.URL.Path == "/ok" {
			rw.WriteHeader(http.StatusNoContent)
			return nil
		}
		return renderInput(t)
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set("X-Request-Id", "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "abc", decode(t, rec)["requestId"])
}
