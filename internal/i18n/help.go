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

import "golang.org/x/text/language"

const usageEnglish = `Publish Python distributions from dist/ to PyPI with uv.

Usage:
  publish [test|prod] [flags]

Targets:
  test    Upload to TestPyPI (https://test.pypi.org/legacy/)
  prod    Upload to PyPI (https://upload.pypi.org/legacy/), the default

Flags:
  -h, --help          Show this help
  -v, --verbose       Enable verbose logging
      --dry-run       Run every check, then print the uv publish command instead of running it
      --config PATH   Configuration file (default publish.yaml, env PUBLISH_CONFIG)
      --dist-dir DIR  Directory holding the built distributions (default dist, env PUBLISH_DIST_DIR)
      --require-clean Fail when the git working tree has uncommitted changes (env PUBLISH_REQUIRE_CLEAN)
      --show-config   Print the effective configuration and exit

Environment:
  UV_PUBLISH_TOKEN  PyPI API token. When unset, the keyring is checked and
                    uv prompts for credentials if nothing is saved.
  PUBLISH_LANG      Message language, en or zh (defaults to LANG)

Build the distributions first with "uv build".

Exit status:
  0  published, or cancelled at the confirmation prompt
  1  invalid argument, uv not installed, distributions missing, or
     uncommitted changes with --require-clean
  n  uv publish failed with exit status n
`

const usageChinese = `使用 uv 将 dist/ 中的 Python 分发包发布到 PyPI。

用法：
  publish [test|prod] [选项]

目标：
  test    上传到 TestPyPI（https://test.pypi.org/legacy/）
  prod    上传到 PyPI（https://upload.pypi.org/legacy/），默认值

选项：
  -h, --help          显示此帮助
  -v, --verbose       输出详细日志
      --dry-run       执行全部检查，只打印 uv publish 命令而不运行
      --config PATH   配置文件（默认 publish.yaml，环境变量 PUBLISH_CONFIG）
      --dist-dir DIR  存放构建产物的目录（默认 dist，环境变量 PUBLISH_DIST_DIR）
      --require-clean git 工作区有未提交的更改时报错（环境变量 PUBLISH_REQUIRE_CLEAN）
      --show-config   打印生效的配置后退出

环境变量：
  UV_PUBLISH_TOKEN  PyPI API 令牌。未设置时会检查密钥环，
                    若未保存凭据，uv 会提示输入。
  PUBLISH_LANG      消息语言，en 或 zh（默认取自 LANG）

请先运行 "uv build" 构建分发包。

退出状态：
  0  发布成功，或在确认提示处取消
  1  参数无效、未安装 uv、缺少分发包，或使用 --require-clean 时有未提交的更改
  n  uv publish 以退出状态 n 失败
`

// Usage returns the help text in the language closest to tag.
func Usage(tag language.Tag) string {
	if base, _ := tag.Base(); base.String() == "zh" {
		return usageChinese
	}
	return usageEnglish
}
