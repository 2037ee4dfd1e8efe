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

package operation

import (
	"fmt"
	"strings"

	"dirpx.dev/derrclass"
)

// Join returns an encoder that concatenates the component strings with sep.
func Join(sep string) Encoder {
	return JoinWith("", sep)
}

// JoinWith is Join with a header placed before the joined components.
func JoinWith(header, sep string) Encoder {
	return func(in Input, _ derrclass.CustomOptions) (any, error) {
		parts, ok := in.Strings()
		if !ok {
			return nil, fmt.Errorf("%w: join encoder needs string component encodings", derrclass.ErrEncoderContract)
		}
		return header + strings.Join(parts, sep), nil
	}
}
