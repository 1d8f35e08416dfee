package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestModerator(t *testing.T) *Moderator {
	t.Helper()
	moderator, err := NewModerator([]string{"noob", "trash", "nul"}, '*')
	require.NoError(t, err)
	return moderator
}

func Test_Censor_Replaces_Blacklisted_Word(t *testing.T) {
	req := require.New(t)
	moderator := newTestModerator(t)

	censored, found := moderator.Censor("you are a noob at this")
	req.Equal("you are a **** at this", censored)
	req.Equal([]string{"noob"}, found)
}

func Test_Censor_Is_Case_Insensitive(t *testing.T) {
	req := require.New(t)
	moderator := newTestModerator(t)

	censored, found := moderator.Censor("NoOb")
	req.Equal("****", censored)
	req.Len(found, 1)
}

func Test_Censor_Catches_Leet_Speak(t *testing.T) {
	req := require.New(t)
	moderator := newTestModerator(t)

	censored, found := moderator.Censor("what a n00b")
	req.Equal("what a ****", censored)
	req.Equal([]string{"noob"}, found)
}

func Test_Censor_Catches_Spaced_Out_Spelling(t *testing.T) {
	req := require.New(t)
	moderator := newTestModerator(t)

	censored, found := moderator.Censor("t r a s h")
	req.Len(found, 1)
	req.NotContains(censored, "t r a s h")
}

func Test_Censor_Leaves_Clean_Text_Untouched(t *testing.T) {
	req := require.New(t)
	moderator := newTestModerator(t)

	input := "that chord progression is beautiful"
	censored, found := moderator.Censor(input)
	req.Equal(input, censored)
	req.Empty(found)
}

func Test_Censor_Multiple_Occurrences(t *testing.T) {
	req := require.New(t)
	moderator := newTestModerator(t)

	censored, found := moderator.Censor("noob and trash")
	req.Equal("**** and *****", censored)
	req.Len(found, 2)
}
