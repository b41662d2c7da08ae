// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/model"
)

const sampleSource = `import { thing } from "./thing";

export function createClient(opts: ClientOptions): PushClient {
  return new PushClient(opts);
}

export default async function initialize() {
  return true;
}

export abstract class BaseSigner {
  abstract sign(payload: Uint8Array): Promise<string>;
}

export class PushClient extends BaseSigner {
  constructor(private readonly opts: ClientOptions) {
    super();
  }
}

export interface ClientOptions {
  network: Network;
  rpcUrl?: string;
}

export type Network = "mainnet" | "testnet" | "devnet";

export const enum ChainId {
  Mainnet = 9,
  Testnet = 42101,
}

export const DEFAULT_RPC = "https://rpc.push.org";
export let mutableFlag = false;
export var legacyValue = 1;

function internalHelper() {}
const INTERNAL = 2;
`

func TestExports_FindsAllKinds(t *testing.T) {
	records := Exports("packages/core/src/client.ts", sampleSource)

	byName := make(map[string]model.ExportKind)
	for _, r := range records {
		byName[r.Name] = r.Kind
		assert.Equal(t, "packages/core/src/client.ts", r.SourceFile)
	}

	assert.Equal(t, model.KindFunction, byName["createClient"])
	assert.Equal(t, model.KindFunction, byName["initialize"])
	assert.Equal(t, model.KindClass, byName["BaseSigner"])
	assert.Equal(t, model.KindClass, byName["PushClient"])
	assert.Equal(t, model.KindInterface, byName["ClientOptions"])
	assert.Equal(t, model.KindType, byName["Network"])
	assert.Equal(t, model.KindType, byName["ChainId"])
	assert.Equal(t, model.KindConstant, byName["DEFAULT_RPC"])
	assert.Equal(t, model.KindConstant, byName["mutableFlag"])
	assert.Equal(t, model.KindConstant, byName["legacyValue"])
}

func TestExports_IgnoresNonExported(t *testing.T) {
	records := Exports("a.ts", sampleSource)
	for _, r := range records {
		assert.NotEqual(t, "internalHelper", r.Name)
		assert.NotEqual(t, "INTERNAL", r.Name)
	}
}

// "export const enum Foo" must classify as a type named Foo, never as a
// constant named "enum".
func TestExports_ConstEnumNotMisclassified(t *testing.T) {
	records := Exports("a.ts", "export const enum Status { Ok, Fail }\n")
	require.Len(t, records, 1)
	assert.Equal(t, "Status", records[0].Name)
	assert.Equal(t, model.KindType, records[0].Kind)
}

func TestExports_DedupesNameKindPairs(t *testing.T) {
	src := "export function overloaded(a: string): void;\nexport function overloaded(a: number): void;\n"
	records := Exports("a.ts", src)
	require.Len(t, records, 1)
	assert.Equal(t, "overloaded", records[0].Name)
}

func TestExports_EmptySource(t *testing.T) {
	assert.Empty(t, Exports("a.ts", ""))
	assert.Empty(t, Exports("a.ts", "const x = 1;\n"))
}

func TestDefinition_DelimiterSpan(t *testing.T) {
	def := Definition("ClientOptions", model.KindInterface, "a.ts", sampleSource)

	assert.True(t, strings.HasPrefix(def, "export interface ClientOptions"))
	assert.Contains(t, def, "rpcUrl?: string;")
	// The span ends before the next top-level export.
	assert.NotContains(t, def, "export type Network")
}

func TestDefinition_SpanCapped(t *testing.T) {
	long := "export const BIG = `" + strings.Repeat("x", 5000) + "`;\n"
	def := Definition("BIG", model.KindConstant, "a.ts", long)
	assert.LessOrEqual(t, len(def), maxDefinitionSpan)
	assert.True(t, strings.HasPrefix(def, "export const BIG"))
}

func TestDefinition_LineWindowFallback(t *testing.T) {
	// A re-export has no declaration keyword, so the delimiter tier misses
	// and the raw line window applies.
	var b strings.Builder
	b.WriteString("export { renamed as Widget } from \"./widget\";\n")
	for i := 0; i < 50; i++ {
		b.WriteString("// filler\n")
	}
	def := Definition("Widget", model.KindClass, "a.ts", b.String())

	assert.True(t, strings.HasPrefix(def, "export { renamed as Widget }"))
	assert.LessOrEqual(t, len(strings.Split(def, "\n")), fallbackWindowLines)
}

func TestDefinition_PlaceholderWhenAbsent(t *testing.T) {
	def := Definition("Ghost", model.KindClass, "packages/core/src/a.ts", "const x = 1;\n")

	assert.Contains(t, def, "Ghost is declared in packages/core/src/a.ts")
	assert.Contains(t, def, "get_source_file")
}

func TestDefinition_LastExportRunsToEOF(t *testing.T) {
	src := "export const FIRST = 1;\n\nexport const LAST = 2;\n// trailing comment\n"
	def := Definition("LAST", model.KindConstant, "a.ts", src)
	assert.Equal(t, "export const LAST = 2;\n// trailing comment", def)
}
