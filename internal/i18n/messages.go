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

// chinese maps English messages to Simplified Chinese. Keys must match the
// format strings passed to the printer exactly.
var chinese = []struct {
	key, msg string
}{
	// Usage and arguments.
	{"publish Python distributions to PyPI with uv", "使用 uv 将 Python 分发包发布到 PyPI"},
	{"invalid argument %q: expected \"test\" or \"prod\"", "无效参数 %q：应为 \"test\" 或 \"prod\""},
	{"invalid argument: %v", "无效参数：%v"},

	// Environment.
	{"%s was not found. Install uv first:\n  curl -LsSf https://astral.sh/uv/install.sh | sh\n  pip install uv\nSee https://docs.astral.sh/uv/getting-started/installation/", "未找到 %s。请先安装 uv：\n  curl -LsSf https://astral.sh/uv/install.sh | sh\n  pip install uv\n参见 https://docs.astral.sh/uv/getting-started/installation/"},

	// Artifacts.
	{"%s does not exist. Run \"uv build\" first.", "%s 不存在。请先运行 \"uv build\"。"},
	{"%s is empty. Run \"uv build\" first.", "%s 为空。请先运行 \"uv build\"。"},
	{"No wheel file (*.whl) found in %s. Run \"uv build\" first.", "在 %s 中未找到 wheel 文件（*.whl）。请先运行 \"uv build\"。"},
	{"No source archive (*.tar.gz) found in %s. Run \"uv build\" first.", "在 %s 中未找到源码包（*.tar.gz）。请先运行 \"uv build\"。"},
	{"Cannot read %s: %v", "无法读取 %s：%v"},
	{"Found %d distribution file(s) in %s:", "在 %[2]s 中找到 %[1]d 个分发文件："},
	{"Found %d wheel files and %d source archives; all of them will be uploaded.", "找到 %d 个 wheel 文件和 %d 个源码包；它们都将被上传。"},
	{"%s does not match %s %s from %s; it may be a stale build.", "%[1]s 与 %[4]s 中的 %[2]s %[3]s 不匹配，可能是旧的构建产物。"},
	{"File", "文件"},
	{"Type", "类型"},
	{"Version", "版本"},
	{"Size", "大小"},

	// Credentials.
	{"Using the token from %s.", "使用 %s 中的令牌。"},
	{"Found a saved credential for %s (%s).", "找到 %s 的已保存凭据（%s）。"},
	{"No token found in %s or the keyring; uv will prompt for credentials.", "未在 %s 或密钥环中找到令牌；uv 将提示输入凭据。"},

	// Repository.
	{"The git working tree has uncommitted changes: %s", "git 工作区有未提交的更改：%s"},
	{"Cannot check the git working tree: %v", "无法检查 git 工作区：%v"},

	// Confirmation and upload.
	{"PyPI (production)", "PyPI（正式环境）"},
	{"TestPyPI (test)", "TestPyPI（测试环境）"},
	{"Publish to %s at %s? Type \"yes\" to continue: ", "确认发布到 %s（%s）？输入 \"yes\" 继续："},
	{"Could not read the confirmation: %v", "无法读取确认输入：%v"},
	{"Publish cancelled.", "已取消发布。"},
	{"Dry run; would run: %s", "演练模式；将运行：%s"},
	{"Uploading to %s...", "正在上传到 %s..."},
	{"Published successfully: %s", "发布成功：%s"},
	{"Published successfully.", "发布成功。"},
	{"uv publish failed with exit status %d", "uv publish 失败，退出状态 %d"},
}
