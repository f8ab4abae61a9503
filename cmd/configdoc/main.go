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

// Command configdoc writes the Markdown schema of publish.yaml.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aury-dev/publish/internal/configdoc"
)

var (
	inputDir   = flag.String("input", "internal/config", "Input directory containing config structs")
	outputFile = flag.String("output", "doc/config-schema.md", "Output file for documentation")
	rootStruct = flag.String("root", "Config", "The name of the root struct to start documentation from")
	rootTitle  = flag.String("root-title", "Root", "The title to use for the root struct block")
	tag        = flag.String("tag", "yaml", "The struct tag to use for field names (e.g., yaml, json)")
	title      = flag.String("title", "publish.yaml", "The title of the generated Markdown page")
	linkPrefix = flag.String("link-prefix", "../", "Prefix for source links, relative to the output file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() (err error) {
	output, err := os.Create(*outputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		cerr := output.Close()
		if err == nil {
			err = cerr
		}
	}()
	opts := configdoc.Options{
		Dir:        *inputDir,
		Root:       *rootStruct,
		RootTitle:  *rootTitle,
		Tag:        *tag,
		Title:      *title,
		LinkPrefix: *linkPrefix,
	}
	if err := configdoc.Generate(output, opts); err != nil {
		return fmt.Errorf("generating documentation: %w", err)
	}
	return nil
}
