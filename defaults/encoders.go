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

package defaults

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dirpx.dev/derrclass"
	"dirpx.dev/derrclass/name"
)

// CreateMessage is the custom option key under which nonTechnical encoders
// look for their message callback.
const CreateMessage = "createMessage"

// ErrMissingMessageFunc is returned by nonTechnical encoders called without
// a CreateMessage callback.
var ErrMissingMessageFunc = errors.New("for the non-technical encoding, you must provide a createMessage function to assemble the final message")

// NonTechnicalInput is handed to a MessageFunc.
type NonTechnicalInput struct {
	Numeric         string
	Short           string
	TypeExplanation string
}

// MessageFunc assembles the nonTechnical message of one instance.
type MessageFunc func(in NonTechnicalInput) string

// OperationMessageFunc assembles the nonTechnical message of an operation
// from its component encodings.
type OperationMessageFunc func(encodings []any) string

// MessageCreator produces the type-specific part of a standard or verbose
// message.
type MessageCreator func(ctx derrclass.Context) string

// ShortForm returns the concatenation of class, type and severity with the
// first letter of each uppercased, e.g. "CallerParameterError". The rest of
// each name is kept as is, so "my-class" becomes "My-class".
func ShortForm(class, typ, severity name.Name) string {
	upper := cases.Upper(language.Und)
	return capitaliseFirst(upper, class) + capitaliseFirst(upper, typ) + capitaliseFirst(upper, severity)
}

func capitaliseFirst(upper cases.Caser, n name.Name) string {
	s := string(n)
	_, size := utf8.DecodeRuneInString(s)
	return upper.String(s[:size]) + s[size:]
}

// UniversalEncoders returns the encoders shared by every type: short,
// numeric, full and nonTechnical.
func UniversalEncoders(codes Codes, explanations Explanations) map[name.Name]derrclass.Encoder {
	return map[name.Name]derrclass.Encoder{
		Short: func(ctx derrclass.Context, _ derrclass.CustomOptions) (any, error) {
			return ShortForm(ctx.Class, ctx.Type, ctx.Severity), nil
		},
		Numeric: func(ctx derrclass.Context, _ derrclass.CustomOptions) (any, error) {
			return codes.Lookup(ctx.Class, ctx.Type, ctx.Severity)
		},
		Full: func(ctx derrclass.Context, _ derrclass.CustomOptions) (any, error) {
			opts, err := json.Marshal(ctx.Options)
			if err != nil {
				return nil, fmt.Errorf("full encoding: %w", err)
			}
			return ShortForm(ctx.Class, ctx.Type, ctx.Severity) + "(" + string(opts) + ")", nil
		},
		NonTechnical: func(ctx derrclass.Context, custom derrclass.CustomOptions) (any, error) {
			create, err := messageFunc(custom)
			if err != nil {
				return nil, err
			}
			explanation, err := explanations.Lookup(ctx.Class, ctx.Type)
			if err != nil {
				return nil, err
			}
			numeric, err := codes.Lookup(ctx.Class, ctx.Type, ctx.Severity)
			if err != nil {
				return nil, err
			}
			return create(NonTechnicalInput{
				Numeric:         numeric,
				Short:           ShortForm(ctx.Class, ctx.Type, ctx.Severity),
				TypeExplanation: explanation,
			}), nil
		},
	}
}

// StandardEncoder renders "Short: message".
func StandardEncoder(msg MessageCreator) derrclass.Encoder {
	return func(ctx derrclass.Context, _ derrclass.CustomOptions) (any, error) {
		return ShortForm(ctx.Class, ctx.Type, ctx.Severity) + ": " + msg(ctx), nil
	}
}

// VerboseEncoder renders the short form followed by the message, the
// fallback, the details and the solutions, one per indented line.
func VerboseEncoder(msg MessageCreator) derrclass.Encoder {
	return func(ctx derrclass.Context, _ derrclass.CustomOptions) (any, error) {
		solutions := "No solutions to this problem were provided."
		if len(ctx.Solutions) > 0 {
			solutions = "Possible solutions to this problem are: \n\t\t• " + strings.Join(ctx.Solutions, "\n\t\t• ")
		}
		fallback := "No fallback to attempt to automatically work around this problem was provided."
		if ctx.Fallback != "" {
			fallback = "To try to work around the problem, this program will now run fallback logic:\n\t\t" + ctx.Fallback
		}
		details := "No further details are available about this problem."
		if ctx.Details != "" {
			details = "The following further details were provided about this problem:\n\t\t" + ctx.Details
		}
		short := ShortForm(ctx.Class, ctx.Type, ctx.Severity)
		return short + ":\n\t" + msg(ctx) + "\n\t" + fallback + "\n\t" + details + "\n\t" + solutions, nil
	}
}

// TypeEncoders returns the universal encoders plus standard and verbose
// encoders built from the given message creators.
func TypeEncoders(codes Codes, explanations Explanations, standard, verbose MessageCreator) map[name.Name]derrclass.Encoder {
	encoders := UniversalEncoders(codes, explanations)
	encoders[Standard] = StandardEncoder(standard)
	encoders[Verbose] = VerboseEncoder(verbose)
	return encoders
}

func messageFunc(custom derrclass.CustomOptions) (MessageFunc, error) {
	v, ok := custom.Get(CreateMessage)
	if !ok {
		return nil, ErrMissingMessageFunc
	}
	switch f := v.(type) {
	case MessageFunc:
		return f, nil
	case func(NonTechnicalInput) string:
		return f, nil
	default:
		return nil, fmt.Errorf("%w (got %T)", ErrMissingMessageFunc, v)
	}
}

func operationMessageFunc(custom derrclass.CustomOptions) (OperationMessageFunc, error) {
	v, ok := custom.Get(CreateMessage)
	if !ok {
		return nil, ErrMissingMessageFunc
	}
	switch f := v.(type) {
	case OperationMessageFunc:
		return f, nil
	case func([]any) string:
		return f, nil
	default:
		return nil, fmt.Errorf("%w (got %T)", ErrMissingMessageFunc, v)
	}
}

// param formats a parameter for inclusion in a message.
func param(ctx derrclass.Context, key string) string {
	return fmt.Sprint(ctx.Params[key])
}

// list formats a list parameter as its elements. Non-list values yield a
// single element.
func list(ctx derrclass.Context, key string) []string {
	v, ok := ctx.Params[key]
	if !ok || v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []string{fmt.Sprint(v)}
	}
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return out
}

// bullets renders a list parameter as an indented bullet list.
func bullets(ctx derrclass.Context, key string) string {
	return "\n\t\t• " + strings.Join(list(ctx, key), "\n\t\t• ")
}
