package extract

import (
	"reflect"
	"testing"
)

func Test_scriptExtractor_ImportsPreserveOrderAndRepetition(t *testing.T) {
	content := `import fs from "fs";
import { join } from "path";
import fs2 from "fs";
const lodash = require("lodash");
export { helper } from "./util";
`
	frag := scriptExtractor{}.Extract(content)

	want := []string{"fs", "path", "fs", "lodash", "./util"}
	if !reflect.DeepEqual(frag.Imports, want) {
		t.Errorf("imports = %v, want %v", frag.Imports, want)
	}
}

func Test_scriptExtractor_ExportClassification(t *testing.T) {
	content := `export function add(a, b) { return a + b; }
export default class Calculator {}
export const MAX_DEPTH = 10;
export const version = "1.0";
`
	frag := scriptExtractor{}.Extract(content)

	if !contains(frag.Functions, "add") {
		t.Errorf("expected add in functions, got %v", frag.Functions)
	}
	if !contains(frag.Classes, "Calculator") {
		t.Errorf("expected Calculator in classes, got %v", frag.Classes)
	}
	if !contains(frag.Constants, "MAX_DEPTH") {
		t.Errorf("expected MAX_DEPTH in constants, got %v", frag.Constants)
	}
	if contains(frag.Constants, "version") {
		t.Error("lowercase binding must not be classified as a constant")
	}
	for _, name := range []string{"add", "Calculator", "MAX_DEPTH", "version"} {
		if !contains(frag.Exports, name) {
			t.Errorf("expected %s in exports, got %v", name, frag.Exports)
		}
	}
}

func Test_scriptExtractor_TypeScriptInterfacesAndTypes(t *testing.T) {
	content := `export interface Config { root: string }
interface internalShape { x: number }
export type Result = string | null;
type Alias = number;
`
	frag := scriptExtractor{typescript: true}.Extract(content)

	if !contains(frag.Interfaces, "Config") || !contains(frag.Interfaces, "internalShape") {
		t.Errorf("interfaces = %v", frag.Interfaces)
	}
	if !contains(frag.Types, "Result") || !contains(frag.Types, "Alias") {
		t.Errorf("types = %v", frag.Types)
	}
	if !contains(frag.Exports, "Config") || contains(frag.Exports, "internalShape") {
		t.Errorf("exports = %v", frag.Exports)
	}
}

func Test_scriptExtractor_PlainJavaScriptSkipsTypeScanning(t *testing.T) {
	content := `interface looksLikeTS { x: number }
function run() {}
`
	frag := scriptExtractor{typescript: false}.Extract(content)

	if len(frag.Interfaces) != 0 {
		t.Errorf("expected no interfaces for plain JS, got %v", frag.Interfaces)
	}
	if !contains(frag.Functions, "run") {
		t.Errorf("functions = %v", frag.Functions)
	}
}

func Test_scriptExtractor_ArrowFunctionsAndDeduplication(t *testing.T) {
	content := `const handler = async (req) => req.body;
export function add(a, b) {}
function add(a, b) {}
`
	frag := scriptExtractor{}.Extract(content)

	if !contains(frag.Functions, "handler") {
		t.Errorf("expected arrow binding in functions, got %v", frag.Functions)
	}
	if count(frag.Functions, "add") != 1 {
		t.Errorf("expected add recorded once, got %v", frag.Functions)
	}
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}

func count(list []string, name string) int {
	n := 0
	for _, item := range list {
		if item == name {
			n++
		}
	}
	return n
}
