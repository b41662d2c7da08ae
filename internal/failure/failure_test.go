package failure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtocolCode(t *testing.T) {
	assert.Equal(t, CodeInvalidParams, Validationf("bad args").ProtocolCode())
	assert.Equal(t, CodeMethodNotFound, NotFoundf("", "no such doc").ProtocolCode())
	assert.Equal(t, CodeInternal, Upstreamf("", "rate limited").ProtocolCode())
	assert.Equal(t, CodeInternal, Integrityf("corrupt manifest").ProtocolCode())
	assert.Equal(t, CodeInternal, Internalf("boom").ProtocolCode())
}

func TestExpected(t *testing.T) {
	assert.True(t, Validationf("bad").Expected())
	assert.True(t, NotFoundf("", "missing").Expected())
	assert.False(t, Upstreamf("", "down").Expected())
	assert.False(t, Integrityf("corrupt").Expected())
	assert.False(t, Internalf("boom").Expected())
}

func TestErrorIncludesHint(t *testing.T) {
	f := NotFoundf("Try search_docs instead.", "document %q not found", "a.md")
	assert.Equal(t, `document "a.md" not found Try search_docs instead.`, f.Error())

	bare := Validationf("invalid arguments")
	assert.Equal(t, "invalid arguments", bare.Error())
}
