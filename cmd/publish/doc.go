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

/*
Publish uploads the Python distributions built by "uv build" to PyPI or
TestPyPI with "uv publish".

Before uploading it checks that uv is installed and that the dist directory
holds at least one wheel and one source archive, reports where the upload
credential will come from, lists the files, and asks for a literal "yes".

Usage:

	publish [test|prod] [flags]

The targets are:

	test    upload to TestPyPI (https://test.pypi.org/legacy/)
	prod    upload to PyPI (https://upload.pypi.org/legacy/), the default

The flags are:

	-h, --help          show help
	-v, --verbose       enable verbose logging
	--dry-run           run every check, then print the uv command instead of running it
	--config PATH       configuration file (default publish.yaml, env PUBLISH_CONFIG)
	--dist-dir DIR      directory holding the distributions (env PUBLISH_DIST_DIR)
	--require-clean     fail on uncommitted git changes (env PUBLISH_REQUIRE_CLEAN)
	--show-config       print the effective configuration and exit

When UV_PUBLISH_TOKEN is set, its value is passed to uv with --token.
Otherwise the keyring is checked and uv prompts for credentials if nothing
is saved. Messages are printed in English or Simplified Chinese, chosen from
PUBLISH_LANG, LC_ALL, LC_MESSAGES, or LANG.

The exit status is 0 when the upload succeeds or is cancelled at the
prompt, 1 for an invalid argument, a missing uv, missing distributions, or
uncommitted changes under --require-clean, and the exit status of uv when
the upload itself fails.
*/
package main
