// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package i18n selects the message language and provides the English and
// Simplified Chinese message catalog. English text doubles as the message
// key, so an English printer needs no catalog entries.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the message languages, English first as the fallback.
var Supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

// localeVars are consulted in order; the first non-empty one decides.
var localeVars = []string{"PUBLISH_LANG", "LC_ALL", "LC_MESSAGES", "LANG"}

var (
	matcher = language.NewMatcher(Supported)
	cat     = newCatalog()
)

// Detect picks the message language from the environment. lookup is
// typically os.Getenv.
func Detect(lookup func(string) string) language.Tag {
	for _, key := range localeVars {
		if v := lookup(key); v != "" {
			return Match(v)
		}
	}
	return language.English
}

// Match maps a locale name such as "zh_CN.UTF-8", "zh-Hans" or "en" to one
// of the supported languages. Unknown locales, "C" and "POSIX" map to
// English.
func Match(locale string) language.Tag {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.English
	}
	return Supported[index]
}

// NewPrinter returns a printer for tag backed by the message catalog.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, m := range chinese {
		if err := b.SetString(language.SimplifiedChinese, m.key, m.msg); err != nil {
			panic(err)
		}
	}
	return b
}
