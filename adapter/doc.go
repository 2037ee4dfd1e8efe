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

// Package adapter converts rendered errors into the transport-neutral
// shapes of package apis.
//
// Any error is accepted. Lookup order is:
//
//  1. an apis.ViewProvider anywhere in the chain supplies its own view;
//  2. a *derrclass.Rendered contributes its classification and options;
//  3. an apis.ReasonedError or apis.ClassifiedError contributes what it knows;
//  4. otherwise the view carries just err.Error().
//
// No redaction happens here. Transports decide what to expose.
package adapter
