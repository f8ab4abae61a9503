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

package i18n

import (
	"regexp"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	for _, test := range []struct {
		locale string
		want   language.Tag
	}{
		{"", language.English},
		{"C", language.English},
		{"POSIX", language.English},
		{"C.UTF-8", language.English},
		{"en_US.UTF-8", language.English},
		{"en", language.English},
		{"fr_FR.UTF-8", language.English},
		{"not a locale", language.English},
		{"zh_CN.UTF-8", language.SimplifiedChinese},
		{"zh_CN", language.SimplifiedChinese},
		{"zh-Hans", language.SimplifiedChinese},
		{"zh", language.SimplifiedChinese},
		{"zh_CN.GB18030@stroke", language.SimplifiedChinese},
	} {
		t.Run(test.locale, func(t *testing.T) {
			if got := Match(test.locale); got != test.want {
				t.Errorf("Match(%q) = %v, want %v", test.locale, got, test.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	for _, test := range []struct {
		name string
		env  map[string]string
		want language.Tag
	}{
		{
			name: "nothing set",
			want: language.English,
		},
		{
			name: "LANG",
			env:  map[string]string{"LANG": "zh_CN.UTF-8"},
			want: language.SimplifiedChinese,
		},
		{
			name: "LC_ALL wins over LANG",
			env:  map[string]string{"LC_ALL": "C", "LANG": "zh_CN.UTF-8"},
			want: language.English,
		},
		{
			name: "PUBLISH_LANG wins over everything",
			env:  map[string]string{"PUBLISH_LANG": "zh", "LC_ALL": "en_US.UTF-8"},
			want: language.SimplifiedChinese,
		},
		{
			name: "LC_MESSAGES",
			env:  map[string]string{"LC_MESSAGES": "zh_CN.UTF-8", "LANG": "en_US.UTF-8"},
			want: language.SimplifiedChinese,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := Detect(func(key string) string { return test.env[key] })
			if got != test.want {
				t.Errorf("Detect() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	for _, test := range []struct {
		name string
		tag  language.Tag
		want string
	}{
		{
			name: "english",
			tag:  language.English,
			want: "Found 2 distribution file(s) in dist:",
		},
		{
			name: "chinese",
			tag:  language.SimplifiedChinese,
			want: "在 dist 中找到 2 个分发文件：",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			p := NewPrinter(test.tag)
			if got := p.Sprintf("Found %d distribution file(s) in %s:", 2, "dist"); got != test.want {
				t.Errorf("Sprintf() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestPrinter_UnknownKeyFallsBack(t *testing.T) {
	p := NewPrinter(language.SimplifiedChinese)
	if got, want := p.Sprintf("untranslated %s", "text"), "untranslated text"; got != want {
		t.Errorf("Sprintf() = %q, want %q", got, want)
	}
}

var verbRegex = regexp.MustCompile(`%(\[\d+\])?[a-zA-Z]`)

func TestCatalogVerbs(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range chinese {
		if seen[m.key] {
			t.Errorf("duplicate message %q", m.key)
		}
		seen[m.key] = true
		want := len(verbRegex.FindAllString(m.key, -1))
		got := len(verbRegex.FindAllString(m.msg, -1))
		if got != want {
			t.Errorf("%q: translation has %d verbs, want %d", m.key, got, want)
		}
	}
}

func TestUsage(t *testing.T) {
	for _, test := range []struct {
		name string
		tag  language.Tag
		want []string
	}{
		{
			name: "english",
			tag:  language.English,
			want: []string{"test", "TestPyPI", "prod", "https://upload.pypi.org/legacy/", "UV_PUBLISH_TOKEN", "--help"},
		},
		{
			name: "chinese",
			tag:  language.SimplifiedChinese,
			want: []string{"test", "TestPyPI", "prod", "https://upload.pypi.org/legacy/", "UV_PUBLISH_TOKEN", "用法"},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := Usage(test.tag)
			for _, want := range test.want {
				if !strings.Contains(got, want) {
					t.Errorf("Usage() missing %q", want)
				}
			}
			if strings.Contains(got, "{{") {
				t.Error("Usage() must not contain template actions")
			}
		})
	}
}
