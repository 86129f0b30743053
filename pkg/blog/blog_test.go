package blog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadTime(t *testing.T) {
	assert.Equal(t, int32(1), ReadTime(""))
	assert.Equal(t, int32(1), ReadTime("short post"))
	assert.Equal(t, int32(1), ReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, int32(2), ReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, int32(5), ReadTime(strings.Repeat("word ", 1000)))
}
