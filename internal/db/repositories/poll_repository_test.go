package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLikePattern_PlainPrefixUnchanged(t *testing.T) {
	assert.Equal(t, "11111111", escapeLikePattern("11111111"))
}

func TestEscapeLikePattern_WildcardsMatchLiterally(t *testing.T) {
	assert.Equal(t, `\%`, escapeLikePattern("%"))
	assert.Equal(t, `\_`, escapeLikePattern("_"))
	assert.Equal(t, `a\%b\_c`, escapeLikePattern("a%b_c"))
}

func TestEscapeLikePattern_BackslashEscapedFirst(t *testing.T) {
	assert.Equal(t, `\\\%`, escapeLikePattern(`\%`))
}
