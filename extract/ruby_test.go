package extract

import "testing"

func Test_rubyExtractor_RequiresAndDeclarations(t *testing.T) {
	content := `require "json"
require_relative "./helpers"

MAX_RETRIES = 3
DefaultName = "index"

module Indexing
  class Walker
    def walk
    end

    def self.create
    end
  end
end
`
	frag := rubyExtractor{}.Extract(content)

	if len(frag.Imports) != 2 || frag.Imports[0] != "json" || frag.Imports[1] != "./helpers" {
		t.Errorf("imports = %v", frag.Imports)
	}
	if !contains(frag.Classes, "Walker") {
		t.Errorf("classes = %v", frag.Classes)
	}
	if !contains(frag.Types, "Indexing") {
		t.Errorf("types = %v", frag.Types)
	}
	if !contains(frag.Functions, "walk") || !contains(frag.Functions, "create") {
		t.Errorf("functions = %v", frag.Functions)
	}
	if !contains(frag.Constants, "MAX_RETRIES") {
		t.Errorf("constants = %v", frag.Constants)
	}
	if contains(frag.Constants, "DefaultName") {
		t.Error("CamelCase Ruby constant must not pass the upper-snake heuristic")
	}
}

func Test_shellExtractor_FunctionsAndSources(t *testing.T) {
	content := `#!/usr/bin/env bash
source ./lib/common.sh
. ./lib/colors.sh

INSTALL_DIR=/opt/tool
tmp_dir=/tmp

setup() {
	echo setup
}

function teardown {
	echo teardown
}
`
	frag := shellExtractor{}.Extract(content)

	if len(frag.Imports) != 2 {
		t.Errorf("imports = %v", frag.Imports)
	}
	if !contains(frag.Functions, "setup") || !contains(frag.Functions, "teardown") {
		t.Errorf("functions = %v", frag.Functions)
	}
	if !contains(frag.Constants, "INSTALL_DIR") || contains(frag.Constants, "tmp_dir") {
		t.Errorf("constants = %v", frag.Constants)
	}
}
