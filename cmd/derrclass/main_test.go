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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_ExitCodes(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"status", "--class", "user"}, &stderr))
	assert.Empty(t, stderr.String())

	stderr.Reset()
	assert.Equal(t, 1, run([]string{"status", "--class", "bad class"}, &stderr))
	assert.Contains(t, stderr.String(), "Error: ")
}
