package runtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_LoadCensoredWords(t *testing.T) {
	req := require.New(t)

	data, err := LoadCensoredWords()
	req.NoError(err)
	req.NotEmpty(data.Words)
	req.Contains(data.Languages, "en")
	req.Contains(data.Languages, "fr")

	for _, word := range data.Words {
		req.NotEmpty(word)
	}
}
